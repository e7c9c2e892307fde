package main

import (
	"github.com/spf13/cobra"

	"sensitive-places-api/internal/models"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List place categories with their labels and colors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd.OutOrStdout(), models.AllCategoryInfo())
	},
}
