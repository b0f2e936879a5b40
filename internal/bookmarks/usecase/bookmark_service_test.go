package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"markfy/internal/bookmarks/domain"
	"markfy/internal/bookmarks/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBookmark(id string) *domain.Bookmark {
	return &domain.Bookmark{
		ID:          id,
		Title:       "Go Documentation",
		URL:         "https://go.dev/doc/",
		Description: "The official docs",
		IsFavorite:  true,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
	}
}

// TestGetLinks_Success_MapsItemsAndPagination verifies response shaping
func TestGetLinks_Success_MapsItemsAndPagination(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByQueryFunc: func(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error) {
			return &FindResult{Items: []*domain.Bookmark{testBookmark("abc123")}, Total: 25}, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	page, err := service.GetLinks(context.Background(), domain.Query{Page: 3, Limit: 10, Sort: domain.SortNewest})

	// Assert
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "abc123", page.Data[0].ID)
	assert.Equal(t, "2025-03-01T12:00:00Z", page.Data[0].CreatedAt)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

// TestGetFavoriteLinks_Always_ForcesNewestAndFavoritesFilter verifies the
// favorites listing pins its sort and pushes the filter down to the store
func TestGetFavoriteLinks_Always_ForcesNewestAndFavoritesFilter(t *testing.T) {
	// Arrange
	var gotQuery domain.Query
	var gotPlan query.Plan
	repo := &MockBookmarkRepository{
		FindByQueryFunc: func(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error) {
			gotQuery = q
			gotPlan = query.Build(q, opts...)
			return &FindResult{Items: nil, Total: 0}, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	_, err := service.GetFavoriteLinks(context.Background(), domain.Query{Page: 1, Limit: 10, Sort: domain.SortTitle})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.SortNewest, gotQuery.Sort)
	assert.True(t, gotPlan.FavoritesOnly)
}

// TestGetLinkByID_Missing_ReturnsNilNil verifies absence is not an error
func TestGetLinkByID_Missing_ReturnsNilNil(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return nil, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	link, err := service.GetLinkByID(context.Background(), "missing")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, link)
}

// TestCreateLink_Success_PersistsAndMaps verifies the create path
func TestCreateLink_Success_PersistsAndMaps(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByURLFunc: func(ctx context.Context, url string) (*domain.Bookmark, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error) {
			b := testBookmark("new123")
			b.Title = in.Title
			b.URL = in.URL
			return b, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	link, err := service.CreateLink(context.Background(), domain.CreateInput{
		Title: "Go Documentation",
		URL:   "https://go.dev/doc/",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new123", link.ID)
	assert.Equal(t, "https://go.dev/doc/", link.URL)
}

// TestCreateLink_DuplicateURL_NoWriteHappens verifies the conflict short-circuits
// before any write
func TestCreateLink_DuplicateURL_NoWriteHappens(t *testing.T) {
	// Arrange
	created := false
	repo := &MockBookmarkRepository{
		FindByURLFunc: func(ctx context.Context, url string) (*domain.Bookmark, error) {
			return testBookmark("existing"), nil
		},
		CreateFunc: func(ctx context.Context, in domain.CreateInput) (*domain.Bookmark, error) {
			created = true
			return nil, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	_, err := service.CreateLink(context.Background(), domain.CreateInput{
		Title: "Duplicate",
		URL:   "https://go.dev/doc/",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrDuplicateURL)
	assert.False(t, created)
}

// TestCreateLink_InvalidInput_ReturnsValidationError verifies the repository
// is never consulted for bad input
func TestCreateLink_InvalidInput_ReturnsValidationError(t *testing.T) {
	// Arrange
	service := NewBookmarkService(&MockBookmarkRepository{}, zap.NewNop())

	// Act
	_, err := service.CreateLink(context.Background(), domain.CreateInput{URL: "bogus"})

	// Assert
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

// TestUpdateLink_Missing_ReturnsNotFound verifies the 404 translation
func TestUpdateLink_Missing_ReturnsNotFound(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return nil, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())
	title := "New Title"

	// Act
	_, err := service.UpdateLink(context.Background(), "missing", domain.UpdateInput{Title: &title})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestUpdateLink_ChangedURLTaken_ReturnsConflict verifies uniqueness is
// re-checked when the url changes
func TestUpdateLink_ChangedURLTaken_ReturnsConflict(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return testBookmark(id), nil
		},
		FindByURLFunc: func(ctx context.Context, url string) (*domain.Bookmark, error) {
			return testBookmark("other"), nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())
	newURL := "https://taken.example.com"

	// Act
	_, err := service.UpdateLink(context.Background(), "abc123", domain.UpdateInput{URL: &newURL})

	// Assert
	assert.ErrorIs(t, err, domain.ErrDuplicateURL)
}

// TestUpdateLink_SameURL_SkipsUniquenessCheck verifies an unchanged url does
// not conflict with itself
func TestUpdateLink_SameURL_SkipsUniquenessCheck(t *testing.T) {
	// Arrange
	urlChecked := false
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return testBookmark(id), nil
		},
		FindByURLFunc: func(ctx context.Context, url string) (*domain.Bookmark, error) {
			urlChecked = true
			return testBookmark("other"), nil
		},
		UpdateFunc: func(ctx context.Context, id string, in domain.UpdateInput) (*domain.Bookmark, error) {
			return testBookmark(id), nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())
	sameURL := "https://go.dev/doc/"

	// Act
	_, err := service.UpdateLink(context.Background(), "abc123", domain.UpdateInput{URL: &sameURL})

	// Assert
	require.NoError(t, err)
	assert.False(t, urlChecked)
}

// TestDeleteLink_Missing_ReturnsNotFound verifies delete of an unknown id
func TestDeleteLink_Missing_ReturnsNotFound(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return nil, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	err := service.DeleteLink(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDeleteLink_Success_DeletesExisting verifies the happy path
func TestDeleteLink_Success_DeletesExisting(t *testing.T) {
	// Arrange
	var deletedID string
	repo := &MockBookmarkRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			return testBookmark(id), nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	err := service.DeleteLink(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "abc123", deletedID)
}

// TestToggleFavorite_Success_ReturnsUpdatedState verifies delegation
func TestToggleFavorite_Success_ReturnsUpdatedState(t *testing.T) {
	// Arrange
	repo := &MockBookmarkRepository{
		ToggleFavoriteFunc: func(ctx context.Context, id string) (*domain.Bookmark, error) {
			b := testBookmark(id)
			b.IsFavorite = false
			return b, nil
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	link, err := service.ToggleFavorite(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.False(t, link.IsFavorite)
}

// TestGetLinks_RepositoryError_Propagates verifies storage errors pass through
func TestGetLinks_RepositoryError_Propagates(t *testing.T) {
	// Arrange
	boom := errors.New("storage down")
	repo := &MockBookmarkRepository{
		FindByQueryFunc: func(ctx context.Context, q domain.Query, opts ...query.Option) (*FindResult, error) {
			return nil, boom
		},
	}
	service := NewBookmarkService(repo, zap.NewNop())

	// Act
	_, err := service.GetLinks(context.Background(), domain.Query{Page: 1, Limit: 10})

	// Assert
	assert.ErrorIs(t, err, boom)
}

// TestMapLink_EmptyDescription_OmittedFromJSON verifies the omitempty contract
func TestMapLink_EmptyDescription_OmittedFromJSON(t *testing.T) {
	// Arrange
	b := testBookmark("abc123")
	b.Description = ""

	// Act
	resp := mapLink(b)

	// Assert
	assert.Empty(t, resp.Description)
}
