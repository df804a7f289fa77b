package memory

import (
	"testing"

	"telemock/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) *Store {
	t.Helper()

	s, err := New(nil)
	require.NoError(t, err)

	return s
}

func TestNew_SeedsCollections(t *testing.T) {
	s := newSeeded(t)

	user, ok := s.Users.Find(3)
	require.True(t, ok)
	assert.Equal(t, "cliente", user.Username)
	assert.Equal(t, entity.RolePatient, user.Role)

	product, ok := s.Products.Find(101)
	require.True(t, ok)
	assert.Equal(t, "199.9", product.Price.String())

	_, ok = s.Histories.Find(9001)
	assert.True(t, ok)
	assert.Equal(t, 2, len(s.Prescriptions.Filter(func(p *entity.Prescription) bool { return p.HistoryID == 9001 })))
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := newSeeded(t)

	snap := s.Physicians.Snapshot()
	snap[0].Name = "changed"
	snap[0].Specialties[0] = 99

	live, ok := s.Physicians.Find(snap[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", live.Name)
	assert.NotEqual(t, 99, live.Specialties[0])
}

func TestCollection_NextIDAndRemove(t *testing.T) {
	s := newSeeded(t)

	assert.Equal(t, 7, s.Users.NextID(0))
	assert.Equal(t, 5005, s.Prescriptions.NextID(entity.PrescriptionIDBase))

	empty := NewCollection[*entity.Prescription]()
	assert.Equal(t, entity.PrescriptionIDBase+1, empty.NextID(entity.PrescriptionIDBase))

	assert.True(t, s.Products.Remove(104))
	assert.False(t, s.Products.Remove(104))

	removed := s.Prescriptions.RemoveWhere(func(p *entity.Prescription) bool { return p.HistoryID == 9001 })
	assert.Equal(t, 2, removed)
}

func TestCarts(t *testing.T) {
	c := newCarts()

	assert.Empty(t, c.Lines(3))

	c.Append(3, &entity.CartLine{ProductID: 101, Quantity: 1})
	c.Append(3, &entity.CartLine{ProductID: 102, Quantity: 2})

	line, ok := c.Line(3, 102)
	require.True(t, ok)
	line.Quantity = 5

	snap := c.Snapshot(3)
	require.Len(t, snap, 2)
	assert.Equal(t, 5, snap[1].Quantity)

	snap[0].Quantity = 40
	first, _ := c.Line(3, 101)
	assert.Equal(t, 1, first.Quantity)

	assert.True(t, c.Remove(3, 101))
	assert.False(t, c.Remove(3, 101))

	c.Clear(3)
	assert.Empty(t, c.Lines(3))
}

func TestCarts_RemoveProductAcrossUsers(t *testing.T) {
	c := newCarts()
	c.Append(3, &entity.CartLine{ProductID: 101, Quantity: 1})
	c.Append(3, &entity.CartLine{ProductID: 102, Quantity: 1})
	c.Append(4, &entity.CartLine{ProductID: 102, Quantity: 3})

	assert.Equal(t, 2, c.RemoveProduct(102))
	assert.Zero(t, c.RemoveProduct(102))

	_, ok := c.Line(3, 102)
	assert.False(t, ok)
	assert.Len(t, c.Lines(3), 1)
	assert.NotContains(t, c.lines, 4)
}

func TestPoints_SnapshotOrdering(t *testing.T) {
	p := newPoints()
	p.Add(4, 10)
	p.Add(2, 30)
	p.Add(9, 10)

	assert.Equal(t, 40, p.Add(4, 30))
	assert.Equal(t, []entity.PointsBalance{
		{UserID: 4, Points: 40},
		{UserID: 2, Points: 30},
		{UserID: 9, Points: 10},
	}, p.Snapshot())
	assert.Zero(t, p.Balance(77))
}

type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "h:" + password, nil }
func (prefixHasher) Check(password, stored string) bool { return stored == "h:"+password }

func TestResetAndHashing(t *testing.T) {
	s, err := New(prefixHasher{})
	require.NoError(t, err)

	admin, _ := s.Users.Find(1)
	assert.Equal(t, "h:admin", admin.Password)

	s.Products.Remove(101)
	s.Points.Add(3, 1000)

	require.NoError(t, s.Reset())

	_, ok := s.Products.Find(101)
	assert.True(t, ok)
	assert.Equal(t, 120, s.Points.Balance(3))

	admin, _ = s.Users.Find(1)
	assert.Equal(t, "h:admin", admin.Password)
}

func TestDashboard_ReturnsCopy(t *testing.T) {
	s := newSeeded(t)

	d := s.Dashboard()
	require.NotEmpty(t, d.KPIs)
	d.KPIs[0].Label = "mutated"

	assert.NotEqual(t, "mutated", s.Dashboard().KPIs[0].Label)
}
