package cli

import (
	"danc/internal/i18n"

	"github.com/spf13/cobra"
)

type languageInfo struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

// NewLangCommand lists languages and changes the stored preference.
func NewLangCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lang",
		Aliases: []string{"language"},
		Short:   "List available languages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			current := s.app.Resolver.Current()
			var langs []languageInfo
			for _, code := range s.app.Resolver.Available() {
				langs = append(langs, languageInfo{Code: code, Name: i18n.DisplayName(code), Current: code == current})
			}
			if s.out.JSON() {
				return s.out.Success(langs, "")
			}
			rows := make([][]string, len(langs))
			for i, l := range langs {
				mark := ""
				if l.Current {
					mark = "*"
				}
				rows[i] = []string{mark, l.Code, l.Name}
			}
			s.out.Info(s.app.T("language.current", i18n.DisplayName(current)))
			s.out.Table([]string{"", "Code", "Name"}, rows)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <code>",
		Short: "Change the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.app.SetLanguage(args[0]); err != nil {
				return s.out.Fail(ExitCommandError, "unknown_language", s.app.T("errors.languageNotFound", args[0]))
			}
			code := s.app.Resolver.Current()
			return s.out.Success(map[string]string{"language": code}, s.app.T("success.languageChanged", i18n.DisplayName(code)))
		},
	})
	return cmd
}
