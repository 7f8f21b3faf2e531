package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"calendar-converter/cmd/cli/convert"
	"calendar-converter/cmd/cli/models"
)

var rootCmd = &cobra.Command{
	Use:   "calconv",
	Short: "Turn schedules into calendar files",
	Long: `calconv reads free text, text files or pictures of schedules,
asks the configured language model to list the events in them and
writes an iCalendar (.ics) file you can import anywhere.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(models.Cmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("calconv version %s\n", rootCmd.Version))
}
