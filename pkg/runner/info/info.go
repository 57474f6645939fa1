package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/config"
	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
)

// Info prints where advcontrol keeps its data and how fresh the cache is.
type Info struct {
	App  *app.App
	JSON bool
	Out  io.Writer
}

type report struct {
	ConfigEnv  string            `json:"configEnv,omitempty"`
	ConfigFile string            `json:"configFile,omitempty"`
	Path       string            `json:"path"`
	APIURL     string            `json:"apiUrl"`
	Backend    string            `json:"backend"`
	User       string            `json:"user,omitempty"`
	Cache      map[string]string `json:"cache"`
}

func (n *Info) Do(_ context.Context) error {
	cfg := n.App.Config
	r := report{
		ConfigEnv:  os.Getenv(config.PathEnv),
		ConfigFile: cfg.File,
		Path:       cfg.BasePath(),
		APIURL:     cfg.APIURL,
		Backend:    cfg.SessionBackend,
		Cache:      map[string]string{},
	}
	if sess := n.App.Auth.Current(); sess != nil {
		r.User = sess.User.Email
	}
	for _, kind := range resource.AllKinds() {
		if at, ok := n.App.Disk.SnapshotTime(kind); ok {
			r.Cache[string(kind)] = humanize.Time(at)
		} else {
			r.Cache[string(kind)] = "never"
		}
	}

	pp := printers.New(n.Out)
	if n.JSON {
		return pp.JSON(r)
	}

	if r.ConfigEnv != "" {
		_, _ = fmt.Fprintln(pp.Out, config.PathEnv, "found on env, using", r.ConfigEnv)
	} else {
		_, _ = fmt.Fprintln(pp.Out, config.PathEnv, "env var not set")
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	file := r.ConfigFile
	if file == "" {
		file = "none"
	}
	tbl.AddRow(bold.Sprint("Config file:"), file)
	tbl.AddRow(bold.Sprint("Data path:"), r.Path)
	tbl.AddRow(bold.Sprint("API:"), r.APIURL)
	tbl.AddRow(bold.Sprint("Session backend:"), r.Backend)
	user := r.User
	if user == "" {
		user = "signed out"
	}
	tbl.AddRow(bold.Sprint("User:"), user)
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
	pp.NewLine()

	pp.Title("Cache")
	cache := uitable.New()
	cache.Separator = "  "
	for _, kind := range resource.AllKinds() {
		cache.AddRow(screens.Title(kind), r.Cache[string(kind)])
	}
	_, _ = fmt.Fprintln(pp.Out, cache)
	return nil
}
