package pos

import "restro_pos/model"

// ValidateDraft checks a draft against every dispatch precondition and
// reports all violations at once, so the operator sees the complete list
// rather than fixing one field per attempt.
func ValidateDraft(draft *model.OrderDraft) ValidationErrors {
	var errs ValidationErrors

	if draft.Cart.IsEmpty() {
		errs = append(errs, ValidationError{Code: EmptyOrder, Message: "Order has no items"})
	}

	switch draft.OrderType {
	case model.OrderTypeDineIn:
		if draft.TableName == "" {
			errs = append(errs, ValidationError{Code: MissingTable, Message: "Dine-in order needs a table"})
		}
		if draft.WaiterName == "" {
			errs = append(errs, ValidationError{Code: MissingWaiter, Message: "Dine-in order needs a waiter"})
		}
	case model.OrderTypeDelivery:
		if draft.DriverID == nil {
			errs = append(errs, ValidationError{Code: MissingDriver, Message: "Delivery order needs a driver"})
		}
		if draft.CustomerID == nil {
			errs = append(errs, ValidationError{Code: MissingCustomer, Message: "Delivery order needs a customer"})
		}
	case model.OrderTypeTakeOut:
		// no extra attributes
	default:
		errs = append(errs, ValidationError{Code: MissingOrderType, Message: "Order type is not set"})
	}

	return errs
}
