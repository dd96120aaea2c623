package clarg

// HelpFormatter renders a command's help text. The core package treats
// it purely as an external collaborator: it owns no formatting logic
// itself, only the hook other packages (see the help package) plug
// into via [Command.SetHelpFormatter].
type HelpFormatter interface {
	// FormatHelp renders c's help text (its own arguments, groups, and
	// sub-commands) as a complete, ready-to-print string.
	FormatHelp(c *Command) string
}
