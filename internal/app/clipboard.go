package app

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

type xselClipboarder struct {
	runner CommandRunner
}

func (c *xselClipboarder) Name() string { return "xsel" }

func (c *xselClipboarder) Available() bool { return c.runner.HasCommand("xsel") }

func (c *xselClipboarder) Copy(ctx context.Context, text string) error {
	return copyVia(ctx, c.runner, Command{Name: "xsel", Args: []string{"--input", "--clipboard"}, Stdin: text})
}

type xclipClipboarder struct {
	runner CommandRunner
}

func (c *xclipClipboarder) Name() string { return "xclip" }

func (c *xclipClipboarder) Available() bool { return c.runner.HasCommand("xclip") }

func (c *xclipClipboarder) Copy(ctx context.Context, text string) error {
	return copyVia(ctx, c.runner, Command{Name: "xclip", Args: []string{"-in", "-selection", "clipboard"}, Stdin: text})
}

type wlCopyClipboarder struct {
	runner CommandRunner
}

func (c *wlCopyClipboarder) Name() string { return "wl-copy" }

func (c *wlCopyClipboarder) Available() bool { return c.runner.HasCommand("wl-copy") }

func (c *wlCopyClipboarder) Copy(ctx context.Context, text string) error {
	return copyVia(ctx, c.runner, Command{Name: "wl-copy", Stdin: text})
}

// copyVia runs a clipboard helper detached: xsel, xclip and wl-copy fork a
// child that keeps serving the selection after the helper returns.
func copyVia(ctx context.Context, runner CommandRunner, cmd Command) error {
	cmd.Detach = true
	_, err := runChecked(ctx, runner, cmd)
	return err
}

// systemClipboarder defers to atotto/clipboard, which also covers platforms
// without the X11/Wayland tools above.
type systemClipboarder struct{}

func (c *systemClipboarder) Name() string { return "system" }

func (c *systemClipboarder) Available() bool { return !clipboard.Unsupported }

func (c *systemClipboarder) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: system clipboard: %v", ErrCommandFailed, err)
	}
	return nil
}
