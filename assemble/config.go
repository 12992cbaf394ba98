package assemble

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for assembly configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Version    string
	AppVersion string
	Reorder    string
}

// Config holds CLI flag values for assembly configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewAssembler] to create an [Assembler].
type Config struct {
	Flags      Flags
	Version    string
	AppVersion string
	Reorder    bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Version:    "doc-version",
		AppVersion: "app-version",
		Reorder:    "reorder",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds assembly flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Version, c.Flags.Version, DefaultDocumentVersion,
		"schema document format version")
	flags.StringVar(&c.AppVersion, c.Flags.AppVersion, "",
		"target application version recorded on the document")
	flags.BoolVar(&c.Reorder, c.Flags.Reorder, true,
		"reconcile section key order against the documentation source")
}

// RegisterCompletions registers shell completions for assembly flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Version, c.Flags.AppVersion} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewAssembler creates an [Assembler] using this [Config].
func (c *Config) NewAssembler() *Assembler {
	return New(
		WithVersion(c.Version),
		WithAppVersion(c.AppVersion),
		WithReorder(c.Reorder),
	)
}
