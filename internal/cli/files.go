package cli

import (
	"context"
	"fmt"
)

func (a *App) listFiles(ctx context.Context) {
	files, err := a.assets.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files in the managed folder yet.")
		return
	}

	for _, f := range files {
		sizeKB := float64(f.Size) / 1024
		fmt.Fprintf(a.out, "%s | %.2f KB | %s\n", f.Name, sizeKB, f.ModTime.Format("2006-01-02 15:04"))
	}
}

func (a *App) addFiles(ctx context.Context) {
	sources, err := GetList(a.reader, "Source paths (comma separated)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(sources) == 0 {
		fmt.Fprintln(a.out, "Nothing to add.")
		return
	}

	for _, res := range a.assets.IngestBatch(ctx, sources) {
		if res.Err != nil {
			fmt.Fprintf(a.out, "could not copy %s: %v\n", res.Source, res.Err)
			continue
		}
		fmt.Fprintf(a.out, "added %s\n", res.Dest)
	}
}

func (a *App) removeFile(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "File name to remove", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.assets.Remove(ctx, name); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Removed.")
}
