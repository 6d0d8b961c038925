package portfolio

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/metrics"
)

// Export serializes the whole document in its indented download form.
func (s *Store) Export(ctx context.Context) (string, error) {
	_, span := tracer.Start(ctx, "Export")
	defer span.End()

	doc := s.State()
	out, err := domain.ExportDocument(doc)
	if err != nil {
		span.RecordError(err)
		return "", apperror.NewInternal("failed to export portfolio", err)
	}
	span.SetAttributes(attribute.Int("profiles", len(doc.Profiles)))
	return string(out), nil
}

// ImportDocument replaces the whole document with raw, which may be any
// known schema version including the legacy single-profile shape.
// Undecodable input is reported as an invalid-input error and changes nothing.
// An active id that names no profile is repointed to the first profile.
func (s *Store) ImportDocument(ctx context.Context, raw []byte) error {
	ctx, span := tracer.Start(ctx, "Import")
	defer span.End()

	doc, from, err := domain.DecodeDocument(raw)
	if err != nil {
		span.RecordError(err)
		metrics.ObserveStoreOp("import", metrics.ResultInvalid)
		s.logger.Warn("Rejected portfolio import", zap.Error(err))
		return apperror.NewInvalidInput("invalid portfolio document", err)
	}
	if _, ok := doc.Find(doc.ActiveProfileID); !ok {
		s.logger.Warn("Imported active profile id does not resolve, activating the first profile",
			zap.String("active_profile_id", doc.ActiveProfileID),
			zap.String("profile_id", doc.Profiles[0].ID),
		)
		doc.ActiveProfileID = doc.Profiles[0].ID
		doc.SyncActiveFlags()
	}
	span.SetAttributes(
		attribute.Int("schema_version", from),
		attribute.Int("profiles", len(doc.Profiles)),
	)

	err = s.commit(ctx, "import", service.EventTypeReplaced, func(cur *domain.AllProfilesData) (string, bool) {
		*cur = doc
		return "", true
	})
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// Import reports whether json was accepted. Every failure, including a
// storage error, yields false.
func (s *Store) Import(ctx context.Context, json string) bool {
	return s.ImportDocument(ctx, []byte(json)) == nil
}

// ResetToDefault discards every profile and restores the built-in default.
// Confirmation is the caller's responsibility.
func (s *Store) ResetToDefault(ctx context.Context) error {
	return s.commit(ctx, "reset", service.EventTypeReplaced, func(cur *domain.AllProfilesData) (string, bool) {
		*cur = domain.DefaultDocument()
		return "", true
	})
}
