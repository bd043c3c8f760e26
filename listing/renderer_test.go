package listing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionmotors/carbot/fueltype"
	"github.com/lionmotors/carbot/inventory"
)

// fakeResolver maps paths to canned outcomes.
type fakeResolver struct {
	images map[string][]byte
	errs   map[string]error
	panics map[string]bool
}

func (f fakeResolver) Resolve(path string) ([]byte, error) {
	if f.panics[path] {
		panic("resolver exploded on " + path)
	}
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	if data, ok := f.images[path]; ok {
		return data, nil
	}
	return nil, errors.New("unexpected path " + path)
}

func record(paths ...string) inventory.Record {
	return inventory.Record{
		Year:       2018,
		Make:       "Toyota",
		Model:      "Camry",
		Price:      12000,
		VIN:        "4T1BF1FK5JU123456",
		Condition:  "used",
		Mileage:    54000,
		FuelType:   "gas",
		ImagePaths: paths,
	}
}

func TestRenderMediaGroupWithAllImages(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{
		images: map[string][]byte{"a.jpg": {1}, "b.jpg": {2}},
	})

	msgs := r.Render(context.Background(), record("a.jpg", "b.jpg"))
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].IsMediaGroup())
	assert.Len(t, msgs[0].Images, 2)
	assert.Contains(t, msgs[0].Text, "2018 Toyota Camry")
	assert.Contains(t, msgs[0].Text, "Ціна: $12000")
	assert.Contains(t, msgs[0].Text, "Тип палива: Бензин")
	assert.NotContains(t, msgs[0].Text, "Фото не знайдено")
}

func TestRenderMissingImageAnnotatesCaption(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{
		images: map[string][]byte{"a.jpg": {1}},
		errs:   map[string]error{"gone.jpg": ErrImageNotFound},
	})

	msgs := r.Render(context.Background(), record("a.jpg", "gone.jpg"))
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].IsMediaGroup())
	assert.Len(t, msgs[0].Images, 1)
	assert.Contains(t, msgs[0].Text, "[Фото не знайдено: gone.jpg]")
}

func TestRenderNoImagesResolvedFallsBackToText(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{
		errs: map[string]error{"gone.jpg": ErrImageNotFound},
	})

	msgs := r.Render(context.Background(), record("gone.jpg"))
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].IsMediaGroup())
	assert.Contains(t, msgs[0].Text, "VIN: 4T1BF1FK5JU123456")
	assert.Contains(t, msgs[0].Text, "[Фото не знайдено: gone.jpg]")
}

func TestRenderNoDeclaredPathsMarksNoPhotos(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{})

	msgs := r.Render(context.Background(), record())
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].IsMediaGroup())
	assert.Contains(t, msgs[0].Text, "[Фото відсутні]")
}

func TestRenderUnexpectedErrorDegradesToText(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{
		errs: map[string]error{"a.jpg": errors.New("disk on fire")},
	})

	msgs := r.Render(context.Background(), record("a.jpg"))
	require.Len(t, msgs, 1)
	assert.False(t, msgs[0].IsMediaGroup())
	assert.Contains(t, msgs[0].Text, "[Помилка завантаження фото:")
	assert.Contains(t, msgs[0].Text, "disk on fire")
}

func TestRenderResolverPanicIsContained(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{
		panics: map[string]bool{"a.jpg": true},
	})

	var msgs = r.Render(context.Background(), record("a.jpg"))
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "[Помилка завантаження фото:")
}

func TestRenderUnknownFuelCodePassesThrough(t *testing.T) {
	r := NewRenderer(fueltype.NewCodec(), fakeResolver{})
	rec := record()
	rec.FuelType = "steam"

	msgs := r.Render(context.Background(), rec)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text, "Тип палива: steam")
}

func TestFileResolver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "car.jpg"), []byte{0xFF, 0xD8}, 0o644))

	resolver := FileResolver{BaseDir: dir}

	data, err := resolver.Resolve("car.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, data)

	_, err = resolver.Resolve("nope.jpg")
	assert.ErrorIs(t, err, ErrImageNotFound)
}
