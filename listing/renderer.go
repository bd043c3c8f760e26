package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lionmotors/carbot/conversation"
	"github.com/lionmotors/carbot/core/logger"
	"github.com/lionmotors/carbot/fueltype"
	"github.com/lionmotors/carbot/inventory"
)

// Renderer converts vehicle records into outbound message units. It is
// stateless across calls and never lets one bad record abort a batch: image
// misses annotate the text, and any unexpected resolution failure degrades
// the listing to plain text with an inline error note.
type Renderer struct {
	codec    *fueltype.Codec
	resolver Resolver
}

// NewRenderer builds a renderer over the given fuel codec and image resolver.
func NewRenderer(codec *fueltype.Codec, resolver Resolver) *Renderer {
	return &Renderer{codec: codec, resolver: resolver}
}

// imageResult is the outcome of resolving a single image path.
type imageResult struct {
	path string
	data []byte
	err  error
}

// Render produces the message units for one record: a media group when at
// least one image resolved, otherwise a single text message carrying the
// summary and any per-image annotations.
func (r *Renderer) Render(ctx context.Context, rec inventory.Record) []conversation.Message {
	text := r.summary(rec)

	if len(rec.ImagePaths) == 0 {
		return []conversation.Message{
			conversation.TextMessage(text+"\n[Фото відсутні]", conversation.ReplyNone),
		}
	}

	results := r.resolveImages(rec.ImagePaths)

	var images [][]byte
	for _, res := range results {
		switch {
		case res.err == nil:
			images = append(images, res.data)
		case errors.Is(res.err, ErrImageNotFound):
			text += fmt.Sprintf("\n[Фото не знайдено: %s]", res.path)
			logger.Debug(ctx, "listing", "image.missing",
				slog.String("vin", rec.VIN),
				slog.String("path", res.path),
			)
		default:
			// Unexpected failure: degrade the whole listing to text with the
			// failure inlined, keeping the rest of the batch alive.
			logger.Warn(ctx, "listing", "image.resolve_failed",
				slog.String("vin", rec.VIN),
				slog.String("path", res.path),
				slog.String("err", res.err.Error()),
			)
			return []conversation.Message{
				conversation.TextMessage(
					text+fmt.Sprintf("\n[Помилка завантаження фото: %v]", res.err),
					conversation.ReplyNone,
				),
			}
		}
	}

	if len(images) == 0 {
		return []conversation.Message{conversation.TextMessage(text, conversation.ReplyNone)}
	}
	return []conversation.Message{conversation.MediaGroup(images, text)}
}

// resolveImages folds each path into a success/failure result. A panicking
// resolver is captured as that image's failure instead of unwinding the batch.
func (r *Renderer) resolveImages(paths []string) []imageResult {
	results := make([]imageResult, 0, len(paths))
	for _, path := range paths {
		data, err := r.resolveOne(path)
		results = append(results, imageResult{path: path, data: data, err: err})
	}
	return results
}

func (r *Renderer) resolveOne(path string) (data []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("listing: resolver panic: %v", rec)
		}
	}()
	return r.resolver.Resolve(path)
}

// summary builds the textual listing body shown to the user.
func (r *Renderer) summary(rec inventory.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s\n", rec.Year, rec.Make, rec.Model)
	fmt.Fprintf(&b, "Ціна: $%s\n", formatNumber(rec.Price))
	fmt.Fprintf(&b, "VIN: %s\n", rec.VIN)
	fmt.Fprintf(&b, "Стан: %s\n", rec.Condition)
	fmt.Fprintf(&b, "Пробіг: %s миль\n", formatNumber(rec.Mileage))
	fmt.Fprintf(&b, "Тип палива: %s", r.codec.Display(rec.FuelType))
	return b.String()
}

// formatNumber prints whole values without a decimal tail.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
