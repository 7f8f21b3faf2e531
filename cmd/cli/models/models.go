package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"calendar-converter/pkg/gemini"
)

// Recommended lists the models known to handle both text and image schedules.
var Recommended = []string{
	"gemini-pro",
	"gemini-pro-vision",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-2.5-flash",
	"gemini-2.5-pro",
}

var (
	apiKey   string
	endpoint string
	showAll  bool
)

var Cmd = &cobra.Command{
	Use:   "models",
	Short: "List Gemini models usable for conversion",
	Long: `List the Gemini models visible to your API key that support
generateContent, then report which recommended models are available.

The key is read from --api-key or the GEMINI_API_KEY environment variable
(a .env file in the working directory is honoured).`,
	RunE: runModels,
}

func init() {
	Cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (default: $GEMINI_API_KEY)")
	Cmd.Flags().StringVar(&endpoint, "endpoint", "", "Override the Generative Language API base URL (default: "+gemini.DefaultAPIURL+")")
	Cmd.Flags().BoolVar(&showAll, "all", false, "Also list models without generateContent support")
}

func runModels(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	key := apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return errors.New("GEMINI_API_KEY is not set; pass --api-key or export GEMINI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	list, err := gemini.ListModels(ctx, gemini.Config{APIKey: key, APIURL: strings.TrimSuffix(endpoint, "/")})
	if err != nil {
		return err
	}

	Report(cmd.OutOrStdout(), list, showAll)
	return nil
}

// Report prints the model list followed by the availability of Recommended models.
func Report(w io.Writer, list []gemini.ModelInfo, all bool) {
	rule := strings.Repeat("=", 70)

	shown := make([]gemini.ModelInfo, 0, len(list))
	for _, m := range list {
		if all || m.SupportsGenerate() {
			shown = append(shown, m)
		}
	}

	fmt.Fprintf(w, "Found %d models:\n\n", len(shown))
	for _, m := range shown {
		fmt.Fprintf(w, "[*] %s\n", m.Name)
		fmt.Fprintf(w, "    Display: %s\n", m.DisplayName)
		if m.Version != "" {
			fmt.Fprintf(w, "    Version: %s\n", m.Version)
		}
		if len(m.Methods) > 0 {
			fmt.Fprintf(w, "    Methods: %s\n", strings.Join(m.Methods, ", "))
		}
		fmt.Fprintln(w)
	}

	available := Availability(list)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Model availability for calendar conversion:")
	fmt.Fprintln(w, rule)
	for _, name := range Recommended {
		if available[name] {
			fmt.Fprintf(w, "[OK] %s - AVAILABLE\n", name)
		} else {
			fmt.Fprintf(w, "[NO] %s - NOT AVAILABLE\n", name)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Default model: %s\n", gemini.DefaultModel)
}

// Availability reports, for each Recommended model, whether list offers it with generateContent.
func Availability(list []gemini.ModelInfo) map[string]bool {
	byName := make(map[string]bool, len(list))
	for _, m := range list {
		if m.SupportsGenerate() {
			byName[m.Name] = true
		}
	}

	out := make(map[string]bool, len(Recommended))
	for _, name := range Recommended {
		out[name] = byName[name]
	}
	return out
}
