package domain

import "time"

// Brand описывает бренд часов и аксессуаров
type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

func NewBrand(name string) *Brand {
	return &Brand{
		Name: name,
	}
}
