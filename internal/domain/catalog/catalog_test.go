//go:build unit

package catalog_test

import (
	"testing"

	"salon-booking/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	img := "https://example.com/cut.jpg"

	t.Run("basic success case", func(t *testing.T) {
		svc, err := catalog.NewService(" men-9 ", " Fade ", " Skin fade ", decimal.NewFromInt(40), 30, catalog.GenderMen, &img)
		require.NoError(t, err)

		assert.Equal(t, "men-9", svc.ID())
		assert.Equal(t, "Fade", svc.Name())
		assert.Equal(t, "Skin fade", svc.Description())
		assert.True(t, svc.Price().Equal(decimal.NewFromInt(40)))
		assert.Equal(t, 30, svc.DurationMin())
		assert.Equal(t, catalog.GenderMen, svc.Gender())
		require.NotNil(t, svc.Image())
		assert.Equal(t, img, *svc.Image())
	})

	t.Run("image is copied", func(t *testing.T) {
		local := "a.jpg"
		svc, err := catalog.NewService("x", "X", "", decimal.NewFromInt(1), 1, catalog.GenderWomen, &local)
		require.NoError(t, err)

		local = "b.jpg"
		*svc.Image() = "c.jpg"
		assert.Equal(t, "a.jpg", *svc.Image())
	})

	cases := []struct {
		name     string
		id       string
		svcName  string
		price    decimal.Decimal
		duration int
		gender   catalog.Gender
		errIs    error
	}{
		{"empty id", " ", "X", decimal.NewFromInt(1), 10, catalog.GenderMen, catalog.ErrEmptyServiceID},
		{"empty name", "x", "", decimal.NewFromInt(1), 10, catalog.GenderMen, catalog.ErrEmptyServiceName},
		{"zero price", "x", "X", decimal.Zero, 10, catalog.GenderMen, catalog.ErrNonPositivePrice},
		{"negative price", "x", "X", decimal.NewFromInt(-5), 10, catalog.GenderMen, catalog.ErrNonPositivePrice},
		{"zero duration", "x", "X", decimal.NewFromInt(1), 0, catalog.GenderMen, catalog.ErrNonPositiveDuration},
		{"unknown gender", "x", "X", decimal.NewFromInt(1), 10, catalog.Gender("kids"), catalog.ErrInvalidGender},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := catalog.NewService(c.id, c.svcName, "", c.price, c.duration, c.gender, nil)
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	mk := func(id string, g catalog.Gender) catalog.Service {
		svc, err := catalog.NewService(id, id, "", decimal.NewFromInt(10), 15, g, nil)
		require.NoError(t, err)
		return svc
	}

	t.Run("splits by gender keeping order", func(t *testing.T) {
		c, err := catalog.NewCatalog(mk("w1", catalog.GenderWomen), mk("m1", catalog.GenderMen), mk("m2", catalog.GenderMen))
		require.NoError(t, err)

		assert.Equal(t, 3, c.Len())
		men := c.ByGender(catalog.GenderMen)
		require.Len(t, men, 2)
		assert.Equal(t, "m1", men[0].ID())
		assert.Equal(t, "m2", men[1].ID())

		all := c.All()
		require.Len(t, all, 3)
		assert.Equal(t, "m1", all[0].ID(), "men come first")
		assert.Equal(t, "w1", all[2].ID())
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := catalog.NewCatalog(mk("dup", catalog.GenderWomen), mk("dup", catalog.GenderMen))
		assert.ErrorIs(t, err, catalog.ErrDuplicateServiceID)
	})

	t.Run("zero service rejected", func(t *testing.T) {
		_, err := catalog.NewCatalog(catalog.Service{})
		assert.ErrorIs(t, err, catalog.ErrEmptyServiceID)
	})

	t.Run("ByGender returns a copy", func(t *testing.T) {
		c, err := catalog.NewCatalog(mk("m1", catalog.GenderMen))
		require.NoError(t, err)

		men := c.ByGender(catalog.GenderMen)
		men[0] = mk("other", catalog.GenderMen)
		_, ok := c.Lookup("m1")
		assert.True(t, ok)
	})

	t.Run("unknown gender yields nothing", func(t *testing.T) {
		c, err := catalog.NewCatalog(mk("m1", catalog.GenderMen))
		require.NoError(t, err)
		assert.Nil(t, c.ByGender(catalog.Gender("kids")))
	})
}

func TestDefaultCatalog(t *testing.T) {
	c := catalog.DefaultCatalog()

	assert.Len(t, c.ByGender(catalog.GenderMen), 4)
	assert.Len(t, c.ByGender(catalog.GenderWomen), 5)

	t.Run("every seeded id resolves", func(t *testing.T) {
		for _, id := range []string{"men-1", "men-2", "men-3", "men-4", "women-1", "women-2", "women-3", "women-4", "women-5"} {
			svc, ok := c.Lookup(id)
			require.True(t, ok, id)
			assert.Equal(t, id, svc.ID())
		}
	})

	t.Run("unknown id is absent", func(t *testing.T) {
		_, ok := c.Lookup("unknown")
		assert.False(t, ok)
	})

	t.Run("classic haircut", func(t *testing.T) {
		svc, ok := c.Lookup("men-1")
		require.True(t, ok)
		assert.Equal(t, "Classic Haircut", svc.Name())
		assert.True(t, svc.Price().Equal(decimal.NewFromInt(45)))
		assert.Equal(t, 30, svc.DurationMin())
	})

	t.Run("bridal makeup", func(t *testing.T) {
		svc, ok := c.Lookup("women-4")
		require.True(t, ok)
		assert.Equal(t, "Bridal Makeup", svc.Name())
		assert.True(t, svc.Price().Equal(decimal.NewFromInt(200)))
		assert.Equal(t, 90, svc.DurationMin())
	})
}

func TestNewGender(t *testing.T) {
	g, err := catalog.NewGender("women")
	require.NoError(t, err)
	assert.Equal(t, catalog.GenderWomen, g)

	_, err = catalog.NewGender("Women")
	assert.ErrorIs(t, err, catalog.ErrInvalidGender)
}
