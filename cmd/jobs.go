package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the job catalog",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tMIN YEARS\tSKILLS")
		for _, job := range loadCatalog(config).Jobs() {
			fmt.Fprintf(w, "%s\t%s\t%g\t%s\n", job.ID, job.Title, job.MinExperienceYears, strings.Join(job.RequiredSkills, ", "))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
