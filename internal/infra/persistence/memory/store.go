// Package memory is the process-lifetime data store behind the mock backend.
// Nothing is persisted; every Store starts from its seed.
package memory

import (
	"cmp"
	"slices"

	"telemock/internal/domain/entity"
	"telemock/internal/domain/service"
	"telemock/internal/errors"
)

// Store holds every collection the mock backend serves. It is not safe for
// concurrent use; the router serializes access.
type Store struct {
	Users            *Collection[*entity.User]
	Products         *Collection[*entity.Product]
	Categories       *Collection[*entity.Lookup]
	Availabilities   *Collection[*entity.Lookup]
	ProductTypes     *Collection[*entity.Lookup]
	AppointmentTypes *Collection[*entity.Lookup]
	Specialties      *Collection[*entity.Lookup]
	Appointments     *Collection[*entity.Appointment]
	Physicians       *Collection[*entity.Physician]
	Histories        *Collection[*entity.ClinicalHistory]
	Prescriptions    *Collection[*entity.Prescription]
	Messages         *Collection[*entity.Message]
	Orders           *Collection[*entity.Order]
	Reviews          *Collection[*entity.Review]
	Posts            *Collection[*entity.BlogPost]
	Carts            *Carts
	Points           *Points

	dashboard entity.DashboardMetrics
	hasher    service.PasswordHasher
}

// NewEmpty returns a store with no records.
func NewEmpty() *Store {
	return &Store{
		Users:            NewCollection[*entity.User](),
		Products:         NewCollection[*entity.Product](),
		Categories:       NewCollection[*entity.Lookup](),
		Availabilities:   NewCollection[*entity.Lookup](),
		ProductTypes:     NewCollection[*entity.Lookup](),
		AppointmentTypes: NewCollection[*entity.Lookup](),
		Specialties:      NewCollection[*entity.Lookup](),
		Appointments:     NewCollection[*entity.Appointment](),
		Physicians:       NewCollection[*entity.Physician](),
		Histories:        NewCollection[*entity.ClinicalHistory](),
		Prescriptions:    NewCollection[*entity.Prescription](),
		Messages:         NewCollection[*entity.Message](),
		Orders:           NewCollection[*entity.Order](),
		Reviews:          NewCollection[*entity.Review](),
		Posts:            NewCollection[*entity.BlogPost](),
		Carts:            newCarts(),
		Points:           newPoints(),
	}
}

// New returns a store loaded with the development seed. Seeded passwords are
// passed through hasher.
func New(hasher service.PasswordHasher) (*Store, error) {
	s := NewEmpty()
	s.hasher = hasher
	if err := s.seed(); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset discards every mutation and reloads the seed in place.
func (s *Store) Reset() error {
	fresh, err := New(s.hasher)
	if err != nil {
		return err
	}
	*s = *fresh

	return nil
}

// Dashboard returns a copy of the static dashboard metrics.
func (s *Store) Dashboard() entity.DashboardMetrics {
	return s.dashboard.Clone()
}

func (s *Store) hash(password string) (string, error) {
	if s.hasher == nil {
		return password, nil
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "hash seed password")
	}

	return hashed, nil
}

// Carts maps a user id to that user's ordered cart lines. A cart exists once
// its first line is added.
type Carts struct {
	lines map[int][]*entity.CartLine
}

func newCarts() *Carts {
	return &Carts{lines: make(map[int][]*entity.CartLine)}
}

// Lines returns the live lines for userID.
func (c *Carts) Lines(userID int) []*entity.CartLine {
	return c.lines[userID]
}

// Line returns the live line for productID in userID's cart.
func (c *Carts) Line(userID, productID int) (*entity.CartLine, bool) {
	for _, line := range c.lines[userID] {
		if line.ProductID == productID {
			return line, true
		}
	}

	return nil, false
}

// Append adds a line, creating the cart if needed.
func (c *Carts) Append(userID int, line *entity.CartLine) {
	c.lines[userID] = append(c.lines[userID], line)
}

// Remove drops productID from userID's cart and reports whether it was there.
func (c *Carts) Remove(userID, productID int) bool {
	before := len(c.lines[userID])
	c.lines[userID] = slices.DeleteFunc(c.lines[userID], func(l *entity.CartLine) bool {
		return l.ProductID == productID
	})

	return len(c.lines[userID]) < before
}

// RemoveProduct drops productID from every cart and returns how many lines
// were removed. Carts left empty are deleted.
func (c *Carts) RemoveProduct(productID int) int {
	removed := 0
	for userID, lines := range c.lines {
		kept := slices.DeleteFunc(lines, func(l *entity.CartLine) bool {
			return l.ProductID == productID
		})
		removed += len(lines) - len(kept)

		if len(kept) == 0 {
			delete(c.lines, userID)
		} else {
			c.lines[userID] = kept
		}
	}

	return removed
}

// Clear empties userID's cart.
func (c *Carts) Clear(userID int) {
	delete(c.lines, userID)
}

// Snapshot returns copies of userID's lines.
func (c *Carts) Snapshot(userID int) []entity.CartLine {
	out := make([]entity.CartLine, 0, len(c.lines[userID]))
	for _, line := range c.lines[userID] {
		out = append(out, *line)
	}

	return out
}

// Points maps a user id to a gamification balance.
type Points struct {
	balances map[int]int
}

func newPoints() *Points {
	return &Points{balances: make(map[int]int)}
}

// Add credits n points to userID and returns the new balance.
func (p *Points) Add(userID, n int) int {
	p.balances[userID] += n

	return p.balances[userID]
}

// Balance returns userID's balance, zero if never awarded.
func (p *Points) Balance(userID int) int {
	return p.balances[userID]
}

// Snapshot returns every balance ordered by points descending, then user id.
func (p *Points) Snapshot() []entity.PointsBalance {
	out := make([]entity.PointsBalance, 0, len(p.balances))
	for userID, points := range p.balances {
		out = append(out, entity.PointsBalance{UserID: userID, Points: points})
	}

	slices.SortFunc(out, func(a, b entity.PointsBalance) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}

		return cmp.Compare(a.UserID, b.UserID)
	})

	return out
}
