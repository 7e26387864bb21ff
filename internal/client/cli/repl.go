package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Status() string
	SwitchTab(name string)
	SelectFile(path string)
	Upload(ctx context.Context)
	SetCode(raw string)
	Info(ctx context.Context)
	Download(ctx context.Context, dir string)
	ShowQR()
	ScanImage(path string)
	Ping(ctx context.Context)
	ShowState()
}

const helpText = `Commands:
  tab upload|download   switch the active tab
  select [path]         choose a local file to share
  upload                upload the selected file, get a code
  code [value]          set the download code
  info                  look up file details for the current code
  get [dir]             download the file for the current code
  qr                    show the QR code for the last upload
  scan <image>          read a code from a QR image file
  ping                  check the server
  state                 dump the session state
  exit | quit           leave`

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Handlers print their own errors; the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "drop (%s)> ", a.Status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "tab":
			if len(args) == 0 {
				fmt.Fprintln(w, "usage: tab upload|download")
				continue
			}
			a.SwitchTab(args[0])

		case "select":
			a.SelectFile(strings.Join(args, " "))

		case "upload", "up":
			a.Upload(ctx)

		case "code":
			a.SetCode(strings.Join(args, ""))

		case "info":
			a.Info(ctx)

		case "get", "download":
			a.Download(ctx, strings.Join(args, " "))

		case "qr":
			a.ShowQR()

		case "scan":
			if len(args) == 0 {
				fmt.Fprintln(w, "usage: scan <image>")
				continue
			}
			a.ScanImage(strings.Join(args, " "))

		case "ping":
			a.Ping(ctx)

		case "state":
			a.ShowState()

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
