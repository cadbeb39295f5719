package domain

import "sync"

// CartLine — накопленное количество одного товара в корзине.
// Пока строка существует, ее Quantity >= 1: строка с нулевым количеством
// удаляется, а не хранится.
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart — упорядоченный реестр строк корзины одной сессии. Порядок вставки
// сохраняется для стабильного отображения. Все мутации атомарны под одним
// мьютексом, чтобы конкурентные запросы одной сессии не нарушали инвариант
// количества.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// NewCartFromLines восстанавливает корзину из сериализованных строк,
// проигрывая Add: некорректные строки при этом отбрасываются.
func NewCartFromLines(lines []CartLine) *Cart {
	cart := NewCart()
	for _, line := range lines {
		cart.Add(line.ProductID, line.Quantity)
	}

	return cart
}

// Add добавляет товар в корзину. Повторное добавление суммирует количество
// существующей строки, новая строка добавляется в конец. Неположительное
// количество отклоняется как no-op.
func (c *Cart) Add(productID int64, quantity int) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.find(productID); idx >= 0 {
		c.lines[idx].Quantity += quantity
		return
	}

	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: quantity})
}

// SetQuantity выставляет количество строки. Значение <= 0 полностью удаляет
// строку: декремент до нуля — это удаление, а не нулевая строка.
// Отсутствующий товар — no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(productID)
	if idx < 0 {
		return
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return
	}

	c.lines[idx].Quantity = quantity
}

// Remove удаляет строку, если она есть. Отсутствующий ключ — no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.find(productID); idx >= 0 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	}
}

// Clear безусловно опустошает корзину.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// ItemCount возвращает сумму количеств всех строк (не число строк).
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}

	return total
}

// Lines возвращает копию строк в порядке вставки.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)

	return lines
}

// find возвращает индекс строки товара или -1. Вызывается под мьютексом.
func (c *Cart) find(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}

	return -1
}
