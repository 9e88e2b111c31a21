package cli

import "github.com/spf13/cobra"

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cansdash.

To load completions:

Bash:
  $ source <(cansdash completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cansdash completion bash > /etc/bash_completion.d/cansdash
  # macOS:
  $ cansdash completion bash > $(brew --prefix)/etc/bash_completion.d/cansdash

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cansdash completion zsh > "${fpath[1]}/_cansdash"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cansdash completion fish | source

  # To load completions for each session, execute once:
  $ cansdash completion fish > ~/.config/fish/completions/cansdash.fish

PowerShell:
  PS> cansdash completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cansdash completion powershell > cansdash.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion output must not depend on a readable config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}
