package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/semi-framework/cli/internal/branding"
)

// Backend module names, in generation order.
const (
	ModuleExpress  = "express"
	ModuleAuth     = "auth"
	ModuleMongoose = "mongoose"
	ModuleRedis    = "redis"
)

// selection records which optional backend modules were chosen.
type selection struct {
	Express  bool
	Auth     bool
	Mongoose bool
	Redis    bool
}

// selectModules asks for every module. Auth is only offered on top of express.
func (g *generator) selectModules() (selection, error) {
	c := g.p.confirmer()
	d := g.p.Defaults
	var (
		sel selection
		err error
	)

	if sel.Express, err = c.Confirm("Do you want to add express (webserver)?", d.Express); err != nil {
		return sel, fmt.Errorf("selecting modules: %w", err)
	}
	if sel.Express {
		if sel.Auth, err = c.Confirm("Do you want to add "+branding.AuthPackage()+" (Backend authentication handler)?", d.Auth); err != nil {
			return sel, fmt.Errorf("selecting modules: %w", err)
		}
	}
	if sel.Mongoose, err = c.Confirm("Do you want to add mongoose (database)?", d.Mongoose); err != nil {
		return sel, fmt.Errorf("selecting modules: %w", err)
	}
	if sel.Redis, err = c.Confirm("Do you want to add ioredis (RAM database)?", d.Redis); err != nil {
		return sel, fmt.Errorf("selecting modules: %w", err)
	}
	return sel, nil
}

func (g *generator) writeModules(sel selection) error {
	data := templateData{
		ProjectName:  g.slug,
		UtilsPackage: branding.UtilsPackage(),
		AuthPackage:  branding.AuthPackage(),
		Auth:         sel.Auth,
	}

	if sel.Express {
		if err := g.writeExpress(data); err != nil {
			return err
		}
	}
	if sel.Auth {
		if err := g.writeComponent(ModuleAuth, data, branding.AuthPackage()); err != nil {
			return err
		}
	}
	if sel.Mongoose {
		if err := g.writeComponent(ModuleMongoose, data, "mongoose"); err != nil {
			return err
		}
	}
	if sel.Redis {
		if err := g.writeComponent(ModuleRedis, data, "ioredis"); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) writeExpress(data templateData) error {
	l := g.layout
	if err := g.install(l.Backend, false, false, "express", "cors"); err != nil {
		return err
	}
	if err := g.install(l.Backend, true, false, "@types/express", "@types/cors"); err != nil {
		return err
	}

	src, err := render(ModuleExpress+".ts", data)
	if err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(l.Src, "express.ts"), src); err != nil {
		return err
	}

	index := filepath.Join(l.Src, "index.ts")
	f, err := os.OpenFile(index, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", index, err)
	}
	if _, err := f.WriteString("import \"./express\";\n"); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", index, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", index, err)
	}

	g.result.Modules = append(g.result.Modules, ModuleExpress)
	return nil
}

// writeComponent installs pkg and renders src/Components/<name>.ts.
func (g *generator) writeComponent(name string, data templateData, pkg string) error {
	l := g.layout
	if err := g.install(l.Backend, false, false, pkg); err != nil {
		return err
	}

	src, err := render(name+".ts", data)
	if err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(l.Components, name+".ts"), src); err != nil {
		return err
	}

	g.result.Modules = append(g.result.Modules, name)
	return nil
}
