package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/selimslab/factory-simulator/internal/factory"
)

// collectOrders builds the order book through a terminal form, one order per
// pass, until the user declines to add another.
func collectOrders(sim *factory.Simulation) error {
	options := make([]huh.Option[string], 0, 3)
	for _, m := range sim.Models() {
		options = append(options, huh.NewOption(m.Name, m.ID))
	}

	for {
		var (
			customer = "Walk-in"
			modelID  string
			qtyStr   = "1"
			more     bool
		)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Customer").
					Value(&customer),
				huh.NewSelect[string]().
					Title("Bike model").
					Options(options...).
					Value(&modelID),
				huh.NewInput().
					Title("Quantity").
					Value(&qtyStr).
					Validate(validatePositiveInt),
				huh.NewConfirm().
					Title("Add another order?").
					Value(&more),
			),
		).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return fmt.Errorf("order form: %w", err)
		}

		qty, _ := strconv.Atoi(qtyStr)
		due := sim.Engine().Now().AddDate(0, 0, 7)
		if _, err := sim.SubmitOrder(customer, modelID, qty, due); err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}
