package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/Lixing-Zhang/chitragupt/pkg/units"
)

var errNotFeasible = errors.New("not enough stock")

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	shortStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

func newStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Print the stock of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			levels, err := app.Stock.ListStock(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStock(levels))
			return nil
		},
	}
}

func newRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "Print the recipe book of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			recipes, err := app.Production.ListRecipes(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecipes(recipes))
			return nil
		},
	}
}

func newPlanCmd() *cobra.Command {
	var (
		recipe  string
		batches int64
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Check whether a recipe can be produced from the catalog stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			plan, err := app.Production.PlanProduction(cmd.Context(), recipe, batches)
			if err != nil {
				return fmt.Errorf("%s: %w", recipe, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPlan(plan, app.Store.Quantity))
			if !plan.Feasible {
				return fmt.Errorf("%d batch(es) of %s: %w", plan.Batches, plan.Recipe, errNotFeasible)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recipe, "recipe", "", "recipe name")
	cmd.Flags().Int64Var(&batches, "batches", 1, "number of batches")
	_ = cmd.MarkFlagRequired("recipe")
	return cmd
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func renderStock(levels []models.StockLevel) string {
	t := newTable("Ingredient", "Stock").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, level := range levels {
		t.Row(level.Name, units.FormatGrams(level.Grams))
	}
	return t.Render()
}

func renderRecipes(recipes []models.Recipe) string {
	t := newTable("Recipe", "Ingredient", "Per batch").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, recipe := range recipes {
		for i, name := range recipe.IngredientNames() {
			label := ""
			if i == 0 {
				label = recipe.Name
			}
			t.Row(label, name, units.FormatGrams(recipe.Requirements[name]))
		}
	}
	return t.Render()
}

func renderPlan(plan *models.ProductionPlan, available func(string) int64) string {
	missing := make(map[string]int64, len(plan.Shortages))
	for _, s := range plan.Shortages {
		missing[s.Ingredient] = s.Deficit
	}

	names := models.Recipe{Requirements: plan.Required}.IngredientNames()
	statusCol := 3

	t := newTable("Ingredient", "Required", "Available", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == statusCol && row >= 0 && row < len(names) && missing[names[row]] > 0:
				return shortStyle
			case col == 1 || col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, name := range names {
		status := "ok"
		if deficit, short := missing[name]; short {
			status = "missing " + units.FormatGrams(deficit)
		}
		t.Row(name,
			units.FormatGrams(plan.Required[name]),
			units.FormatGrams(available(name)),
			status,
		)
	}

	return fmt.Sprintf("%d x %s\n%s", plan.Batches, plan.Recipe, t.Render())
}
