package feed

import (
	"sync"
	"time"
)

// Cooldown подавляет повторные алерты от одного источника в пределах окна.
// Состояние проверяется только в момент прихода события (сравнение с
// wall-clock), без таймеров: источник, «застрявший» в охлаждении, ни на что
// не влияет, пока молчит.
type Cooldown struct {
	mu     sync.Mutex
	until  map[string]time.Time
	window time.Duration
	now    func() time.Time
}

// NewCooldown создает фильтр с заданным окном подавления
func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		until:  make(map[string]time.Time),
		window: window,
		now:    time.Now,
	}
}

// Active сообщает, находится ли источник в окне подавления
func (c *Cooldown) Active(source string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.until[source].After(c.now())
}

// Arm включает окно подавления для источника с текущего момента
func (c *Cooldown) Arm(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.until[source] = c.now().Add(c.window)
}
