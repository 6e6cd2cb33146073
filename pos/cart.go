package pos

import (
	"restro_pos/helper"
	"restro_pos/model"
)

// AddProduct puts a product in the cart. Adding a product that is already
// there bumps its quantity by one and refreshes the unit price, since the
// catalog price may have drifted since the line was created.
func (e *Engine) AddProduct(p model.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.draft.Cart.IndexOf(p.ID); i >= 0 {
		item := &e.draft.Cart.Items[i]
		item.Quantity++
		item.UnitPrice = p.Price
		item.Amount = helper.LineAmount(item.Quantity, item.UnitPrice, item.LineDiscount)
		return
	}

	e.draft.Cart.Items = append(e.draft.Cart.Items, model.LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
		Amount:      helper.LineAmount(1, p.Price, 0),
	})
}

// SetQuantity changes a line's quantity. Anything below 1 is rejected and
// the previous value stands.
func (e *Engine) SetQuantity(index, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setQuantityLocked(index, quantity)
}

func (e *Engine) setQuantityLocked(index, quantity int) error {
	if index < 0 || index >= len(e.draft.Cart.Items) {
		return ErrItemNotFound
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	item := &e.draft.Cart.Items[index]
	item.Quantity = quantity
	item.Amount = helper.LineAmount(item.Quantity, item.UnitPrice, item.LineDiscount)
	return nil
}

// RemoveItem drops a line. Removing the keyboard-selected line clears the
// selection.
func (e *Engine) RemoveItem(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removeItemLocked(index)
}

func (e *Engine) removeItemLocked(index int) error {
	if index < 0 || index >= len(e.draft.Cart.Items) {
		return ErrItemNotFound
	}
	e.draft.Cart.Items = append(e.draft.Cart.Items[:index], e.draft.Cart.Items[index+1:]...)
	if e.selected == index {
		e.selected = -1
	} else if e.selected > index {
		e.selected--
	}
	return nil
}

// Total sums line amounts on every call; nothing is cached.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalLocked()
}

func (e *Engine) totalLocked() float64 {
	total := 0.0
	for _, item := range e.draft.Cart.Items {
		total += item.Amount
	}
	return helper.Round2(total)
}

// Selected returns the keyboard-selected index, -1 when nothing is selected.
func (e *Engine) Selected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// SelectNext moves the cart selection down, wrapping to the top.
func (e *Engine) SelectNext() {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.draft.Cart.Items)
	if n == 0 {
		e.selected = -1
		return
	}
	e.selected = (e.selected + 1) % n
}

// SelectPrev moves the cart selection up, wrapping to the bottom.
func (e *Engine) SelectPrev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.draft.Cart.Items)
	if n == 0 {
		e.selected = -1
		return
	}
	if e.selected <= 0 {
		e.selected = n - 1
		return
	}
	e.selected--
}

// IncrementSelected bumps the selected line's quantity by one.
func (e *Engine) IncrementSelected() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected < 0 {
		return ErrItemNotFound
	}
	return e.setQuantityLocked(e.selected, e.draft.Cart.Items[e.selected].Quantity+1)
}

// DecrementSelected lowers the selected line's quantity by one. Going below
// one is rejected the same way as a direct edit.
func (e *Engine) DecrementSelected() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected < 0 {
		return ErrItemNotFound
	}
	return e.setQuantityLocked(e.selected, e.draft.Cart.Items[e.selected].Quantity-1)
}

// RemoveSelected deletes the selected line.
func (e *Engine) RemoveSelected() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.selected < 0 {
		return ErrItemNotFound
	}
	return e.removeItemLocked(e.selected)
}
