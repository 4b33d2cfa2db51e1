package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/eringen/devcraft/scaffold"
)

func runNew(dir string, out io.Writer) error {
	name := filepath.Base(filepath.Clean(dir))
	data := scaffold.Data{
		SiteName: scaffold.Title(name),
		Date:     time.Now().Format("2006-01-02"),
	}

	fmt.Fprintf(out, "Creating new devcraft site: %s\n\n", dir)
	created, err := scaffold.Write(dir, data)
	for _, p := range created {
		fmt.Fprintf(out, "  created %s\n", p)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done! Next steps:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  cd %s\n", dir)
	fmt.Fprintln(out, "  devcraft serve     # preview on http://localhost:3000")
	fmt.Fprintln(out, "  devcraft build     # write the static site to ./out")
	fmt.Fprintln(out)
	return nil
}
