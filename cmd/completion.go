package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for fuel.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  fuel completion bash       Generate bash completion script
  fuel completion zsh        Generate zsh completion script
  fuel completion fish       Generate fish completion script
  fuel completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(fuel completion bash)

  # Install completion permanently:
  # Linux:
  fuel completion bash > ~/.local/share/bash-completion/completions/fuel

  # macOS (requires bash-completion from Homebrew):
  fuel completion bash > $(brew --prefix)/etc/bash_completion.d/fuel

Zsh:
  # Load completion temporarily (current session only):
  source <(fuel completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  fuel completion zsh > ~/.zsh/completion/_fuel

  # Then restart your shell

Fish:
  # Install completion permanently:
  fuel completion fish > ~/.config/fish/completions/fuel.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  fuel completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	// Completion scripts need no storage.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	deps := cli.GetDeps()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		deps.Fail(fmt.Sprintf("Unsupported shell '%s'", shell), nil, "Supported shells: bash, zsh, fish, powershell")
		return
	}

	if err != nil {
		deps.Fail(fmt.Sprintf("Failed to generate %s completion", shell), err, "")
		return
	}
}
