package pos

import (
	"context"
	"fmt"

	"restro_pos/model"
)

// Command names one keyboard-driven action. The terminal sends the
// accelerator it captured; Keymap resolves it and Exec runs it, so every
// action stays testable without simulating key events.
type Command string

const (
	CmdNewOrder    Command = "new-order"
	CmdHold        Command = "hold"
	CmdBillList    Command = "bill-list"
	CmdKOT         Command = "kot"
	CmdCheckout    Command = "checkout"
	CmdDineIn      Command = "dine-in"
	CmdTakeAway    Command = "take-away"
	CmdDelivery    Command = "delivery"
	CmdNextItem    Command = "next-item"
	CmdPrevItem    Command = "prev-item"
	CmdIncreaseQty Command = "increase-qty"
	CmdDecreaseQty Command = "decrease-qty"
	CmdDeleteItem  Command = "delete-item"
)

// Keymap binds accelerators to commands. Cart navigation keys are only
// forwarded by the terminal while focus is outside the search field.
var Keymap = map[string]Command{
	"F1":        CmdNewOrder,
	"F2":        CmdHold,
	"F3":        CmdBillList,
	"F7":        CmdKOT,
	"F9":        CmdCheckout,
	"Alt+D":     CmdDineIn,
	"Alt+T":     CmdTakeAway,
	"Alt+V":     CmdDelivery,
	"ArrowDown": CmdNextItem,
	"ArrowUp":   CmdPrevItem,
	"+":         CmdIncreaseQty,
	"-":         CmdDecreaseQty,
	"Delete":    CmdDeleteItem,
}

// Resolve maps a captured accelerator to its command.
func Resolve(key string) (Command, bool) {
	cmd, ok := Keymap[key]
	return cmd, ok
}

// Exec runs a command that takes no payload. Checkout and bill-list need
// their own endpoints (payload, response body) and are not dispatched here.
func (e *Engine) Exec(ctx context.Context, cmd Command) error {
	switch cmd {
	case CmdNewOrder:
		e.NewOrder()
		return nil
	case CmdHold:
		return e.Hold(ctx)
	case CmdKOT:
		return e.KOT(ctx)
	case CmdDineIn:
		e.SetOrderType(model.OrderTypeDineIn)
		return nil
	case CmdTakeAway:
		e.SetOrderType(model.OrderTypeTakeOut)
		return nil
	case CmdDelivery:
		e.SetOrderType(model.OrderTypeDelivery)
		return nil
	case CmdNextItem:
		e.SelectNext()
		return nil
	case CmdPrevItem:
		e.SelectPrev()
		return nil
	case CmdIncreaseQty:
		return e.IncrementSelected()
	case CmdDecreaseQty:
		return e.DecrementSelected()
	case CmdDeleteItem:
		return e.RemoveSelected()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
