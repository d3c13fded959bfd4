package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"roads_authority/internal/domain/entities"
	mock_interfaces "roads_authority/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDocumentUseCase(t *testing.T) (*DocumentUseCase, *mock_interfaces.MockIDocumentRepository, *mock_interfaces.MockIFilePresigner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
	presigner := mock_interfaces.NewMockIFilePresigner(ctrl)
	uc := NewDocumentUseCase(repo, presigner, 15*time.Minute)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, presigner
}

func daysFromNow(days int) *time.Time {
	t := fixedNow.AddDate(0, 0, days)
	return &t
}

func testTenders() []entities.Document {
	return []entities.Document{
		{ID: "t1", Kind: entities.DocumentKindTender, Title: "Resealing of B1", Category: "Works", Published: true, OpeningDate: daysFromNow(-30), ClosingDate: daysFromNow(5), CreatedAt: fixedNow.AddDate(0, 0, -30)},
		{ID: "t2", Kind: entities.DocumentKindTender, Title: "Bridge inspection", Category: "Consultancy", Published: true, OpeningDate: daysFromNow(-60), ClosingDate: daysFromNow(-1), CreatedAt: fixedNow.AddDate(0, 0, -60)},
		{ID: "t3", Kind: entities.DocumentKindTender, Title: "Gravel roads Kunene", Category: "Works", Published: true, OpeningDate: daysFromNow(3), ClosingDate: daysFromNow(40), CreatedAt: fixedNow.AddDate(0, 0, -2)},
		{ID: "t4", Kind: entities.DocumentKindTender, Title: "Draft tender", Category: "Works", Published: false, CreatedAt: fixedNow},
	}
}

func TestDocumentUseCase_List(t *testing.T) {
	published := true

	t.Run("invalid kind", func(t *testing.T) {
		uc, _, _ := newTestDocumentUseCase(t)
		_, err := uc.List(context.Background(), DocumentQuery{Kind: "memo"})
		assert.ErrorIs(t, err, ErrInvalidDocumentKind)
	})

	t.Run("published tenders by closing date", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindTender).Return(testTenders(), nil)

		page, err := uc.List(context.Background(), DocumentQuery{Kind: "Tender", Published: &published, Sort: DocumentSortClosingDate})
		require.NoError(t, err)
		require.Len(t, page.Documents, 3)
		assert.Equal(t, "t2", page.Documents[0].ID)
		assert.Equal(t, entities.TenderStatusClosed, page.Documents[0].Status)
		assert.Equal(t, "t1", page.Documents[1].ID)
		assert.Equal(t, entities.TenderStatusOpen, page.Documents[1].Status)
		assert.Equal(t, entities.TenderStatusUpcoming, page.Documents[2].Status)
	})

	t.Run("status and category filters", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindTender).Return(testTenders(), nil)

		page, err := uc.List(context.Background(), DocumentQuery{Kind: "tender", Published: &published, Category: "works", Status: "OPEN"})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, "t1", page.Documents[0].ID)
	})

	t.Run("admin listing paginates newest first", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindTender).Return(testTenders(), nil)

		page, err := uc.List(context.Background(), DocumentQuery{Kind: "tender", Page: 2, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, "t2", page.Documents[0].ID)
	})

	t.Run("search", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindTender).Return(testTenders(), nil)

		page, err := uc.List(context.Background(), DocumentQuery{Kind: "tender", Search: "bridge"})
		require.NoError(t, err)
		require.Len(t, page.Documents, 1)
		assert.Equal(t, "t2", page.Documents[0].ID)
	})
}

func TestDocumentUseCase_DownloadURL(t *testing.T) {
	doc := entities.Document{
		ID:   "f1",
		Kind: entities.DocumentKindForm,
		Attachments: []entities.Attachment{
			{Name: "Form PLN1", Key: "forms/pln1.pdf"},
			{Name: "External", URL: "https://www.ra.org.na/forms/nrf.pdf"},
		},
	}

	t.Run("presigned key", func(t *testing.T) {
		uc, repo, presigner := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(doc, nil)
		presigner.EXPECT().PresignGet(gomock.Any(), "forms/pln1.pdf", 15*time.Minute).Return("https://signed", nil)

		url, err := uc.DownloadURL(context.Background(), "f1", 0)
		require.NoError(t, err)
		assert.Equal(t, "https://signed", url)
	})

	t.Run("direct url", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(doc, nil)

		url, err := uc.DownloadURL(context.Background(), "f1", 1)
		require.NoError(t, err)
		assert.Equal(t, "https://www.ra.org.na/forms/nrf.pdf", url)
	})

	t.Run("index out of range", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(doc, nil)

		_, err := uc.DownloadURL(context.Background(), "f1", 2)
		assert.ErrorIs(t, err, ErrAttachmentNotFound)
	})

	t.Run("no presigner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(doc, nil)

		_, err := uc.DownloadURL(context.Background(), "f1", 0)
		assert.ErrorIs(t, err, ErrPresignerUnavailable)
	})

	t.Run("presign error", func(t *testing.T) {
		uc, repo, presigner := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(doc, nil)
		presigner.EXPECT().PresignGet(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		_, err := uc.DownloadURL(context.Background(), "f1", 0)
		assert.EqualError(t, err, "s3 down")
	})

	t.Run("missing document", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Document{}, nil)

		_, err := uc.DownloadURL(context.Background(), "nope", 0)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})
}

func TestDocumentUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, _, _ := newTestDocumentUseCase(t)
		cases := []struct {
			name string
			doc  entities.Document
			want error
		}{
			{"kind", entities.Document{Kind: "memo", Title: "x"}, ErrInvalidDocumentKind},
			{"title", entities.Document{Kind: entities.DocumentKindNews, Title: " "}, ErrInvalidDocument},
			{"dates", entities.Document{Kind: entities.DocumentKindTender, Title: "x", OpeningDate: daysFromNow(2), ClosingDate: daysFromNow(1)}, ErrInvalidDocument},
			{"attachment", entities.Document{Kind: entities.DocumentKindForm, Title: "x", Attachments: []entities.Attachment{{Name: "empty"}}}, ErrInvalidDocument},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tc.doc)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("published document gets publish date", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)

		got, err := uc.Create(context.Background(), entities.Document{Kind: "procurement-plan", Title: " Plan 2026/27 ", Published: true})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, entities.DocumentKindProcurementPlan, got.Kind)
		assert.Equal(t, "Plan 2026/27", got.Title)
		require.NotNil(t, got.PublishedAt)
		assert.Equal(t, fixedNow, *got.PublishedAt)
	})
}

func TestDocumentUseCase_Update(t *testing.T) {
	current := entities.Document{ID: "n1", Kind: entities.DocumentKindNews, Title: "Old", Published: true, PublishedAt: daysFromNow(-10), CreatedAt: fixedNow.AddDate(0, 0, -10)}

	t.Run("keeps original publish date", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)

		got, err := uc.Update(context.Background(), "n1", entities.Document{Kind: entities.DocumentKindNews, Title: "New", Published: true})
		require.NoError(t, err)
		assert.Equal(t, current.PublishedAt, got.PublishedAt)
		assert.Equal(t, current.CreatedAt, got.CreatedAt)
		assert.Equal(t, fixedNow, got.UpdatedAt)
	})

	t.Run("unpublishing clears publish date", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)

		got, err := uc.Update(context.Background(), "n1", entities.Document{Kind: entities.DocumentKindNews, Title: "New"})
		require.NoError(t, err)
		assert.Nil(t, got.PublishedAt)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newTestDocumentUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "n2").Return(entities.Document{}, nil)

		_, err := uc.Update(context.Background(), "n2", entities.Document{Kind: entities.DocumentKindNews, Title: "x"})
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})
}

func TestDocumentUseCase_Delete(t *testing.T) {
	uc, repo, _ := newTestDocumentUseCase(t)
	repo.EXPECT().Delete(gomock.Any(), "n1").Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), "n2").Return(false, nil)

	assert.NoError(t, uc.Delete(context.Background(), "n1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "n2"), ErrDocumentNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), " "), ErrInvalidDocumentID)
}
