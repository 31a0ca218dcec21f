package cli

import (
	"context"
	"fmt"
)

func (a *App) makeReceipt(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Client name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	files, err := GetList(a.reader, "Files (comma separated names from the managed folder)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	price, tax, discount, ok := a.readMoneyLines()
	if !ok {
		return
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, a.assets.Path(f))
	}

	path, err := a.receipts.Compose(ctx, name, paths, price, tax, discount)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "receipt created", "path", path)
	fmt.Fprintf(a.out, "Receipt created: %s\n", path)
}

func (a *App) listReceipts(ctx context.Context) {
	names, err := a.receipts.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "No receipts yet.")
		return
	}
	for _, n := range names {
		fmt.Fprintln(a.out, n)
	}
}

func (a *App) removeReceipt(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Receipt file name to remove", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.receipts.Remove(ctx, name); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "receipt deleted", "name", name)
	fmt.Fprintln(a.out, "Removed.")
}

func (a *App) readMoneyLines() (price, tax, discount float64, ok bool) {
	var err error
	if price, err = GetMoney(a.reader, "Price (empty for 0)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return 0, 0, 0, false
	}
	if tax, err = GetMoney(a.reader, "Tax (empty for 0)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return 0, 0, 0, false
	}
	if discount, err = GetMoney(a.reader, "Discount (empty for 0)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return 0, 0, 0, false
	}
	return price, tax, discount, true
}
