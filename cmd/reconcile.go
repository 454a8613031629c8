package cmd

import (
	"fmt"

	"github.com/spendbin/backend/internal/ledger"
	"github.com/spendbin/backend/internal/models"
	"github.com/spf13/cobra"
)

var flagReconcileUser uint64

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute the remaining amounts of budgets",
	Long:  "Sets the remaining amount of every budget to its amount minus the sum of its expenses. Without --user, all budgets are reconciled.",
	Args:  cobra.NoArgs,
	RunE:  runReconcile,
}

func init() {
	reconcileCmd.Flags().Uint64Var(&flagReconcileUser, "user", 0, "Only reconcile the budgets of this user")
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	err := connect(cfg.Database)
	if err != nil {
		return err
	}

	l := ledger.New(models.DB, cfg.Ledger.MaxAmountDecimal())
	report, err := l.Reconcile(cmd.Context(), ledger.Scope{UserID: flagReconcileUser})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked:  %d\n", report.Checked)
	fmt.Fprintf(out, "Repaired: %d\n", report.Repaired)

	for _, f := range report.Failures {
		fmt.Fprintf(out, "Failed:   budget %d: %s\n", f.BudgetID, f.Error)
	}

	if len(report.Failures) > 0 {
		return fmt.Errorf("%d budgets could not be reconciled", len(report.Failures))
	}

	return nil
}
