package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/internal/service"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
)

type archiveServiceMock struct {
	entries      []models.ArchiveEntry
	deleted      []string
	deleteCalled bool
}

func (m *archiveServiceMock) Archive() ([]models.ArchiveEntry, error) {
	return m.entries, nil
}

func (m *archiveServiceMock) SaveToArchive(ctx context.Context) (models.ArchiveEntry, error) {
	if len(m.entries) == 0 {
		return models.ArchiveEntry{}, appErrors.Clone(appErrors.ErrValidation, "no student")
	}
	return m.entries[0], nil
}

func (m *archiveServiceMock) DeleteArchiveEntry(ctx context.Context, id string, confirmed bool) error {
	m.deleteCalled = true
	if !confirmed {
		return appErrors.ErrConfirmationRequired
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *archiveServiceMock) RestoreArchiveEntry(id string) (service.RestoredDraft, error) {
	for _, entry := range m.entries {
		if entry.ID == id {
			return service.RestoredDraft{Variant: entry.FormType, Draft: entry.Data}, nil
		}
	}
	return service.RestoredDraft{}, appErrors.ErrNotFound
}

func archiveTestContext(t *testing.T, method, target, id string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	c.Request = req
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	return w, c
}

func TestArchiveHandlerDeleteWithoutConfirm(t *testing.T) {
	mock := &archiveServiceMock{entries: []models.ArchiveEntry{{ID: "a1"}}}
	handler := NewArchiveHandler(mock)

	w, c := archiveTestContext(t, http.MethodDelete, "/archive/a1", "a1")
	handler.Delete(c)
	require.Equal(t, http.StatusPreconditionFailed, w.Code)
	require.Empty(t, mock.deleted)
}

func TestArchiveHandlerDeleteConfirmed(t *testing.T) {
	mock := &archiveServiceMock{entries: []models.ArchiveEntry{{ID: "a1"}}}
	handler := NewArchiveHandler(mock)

	w, c := archiveTestContext(t, http.MethodDelete, "/archive/a1?confirm=true", "a1")
	handler.Delete(c)
	// gin defers the status header until the engine flushes it; with a bare
	// test context and no body written, flush it explicitly.
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, []string{"a1"}, mock.deleted)
}

func TestArchiveHandlerRestoreNotFound(t *testing.T) {
	handler := NewArchiveHandler(&archiveServiceMock{})

	w, c := archiveTestContext(t, http.MethodPost, "/archive/missing/restore", "missing")
	handler.Restore(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestArchiveHandlerListPagination(t *testing.T) {
	entries := make([]models.ArchiveEntry, 0, 25)
	for i := 0; i < 25; i++ {
		entries = append(entries, models.ArchiveEntry{ID: string(rune('a' + i))})
	}
	handler := NewArchiveHandler(&archiveServiceMock{entries: entries})

	w, c := archiveTestContext(t, http.MethodGet, "/archive?page=2&page_size=10", "")
	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_count":25`)
	require.Contains(t, w.Body.String(), `"page":2`)
}
