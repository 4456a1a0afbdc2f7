package implementation

import (
	"context"
	"testing"

	"neurostudy-be/internal/entity"
	"neurostudy-be/internal/pkg/testutil"
	"neurostudy-be/internal/repository/contract"
	"neurostudy-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocuments(t *testing.T, repo contract.DocumentRepository, docs ...entity.Document) []*entity.Document {
	t.Helper()
	out := make([]*entity.Document, 0, len(docs))
	for i := range docs {
		d := docs[i]
		require.NoError(t, repo.Create(context.Background(), &d))
		out = append(out, &d)
	}
	return out
}

func TestDocumentRepositoryCreateAssignsIncreasingIds(t *testing.T) {
	repo := NewDocumentRepository(testutil.DB(t))

	created := seedDocuments(t, repo,
		entity.Document{Subject: entity.SubjectPhysics, Filename: "a.txt", Content: "first"},
		entity.Document{Subject: entity.SubjectPhysics, Filename: "b.txt", Content: "second"},
	)

	assert.NotZero(t, created[0].Id)
	assert.Greater(t, created[1].Id, created[0].Id)
}

func TestDocumentRepositoryFindAllBySubjectKeepsInsertionOrder(t *testing.T) {
	repo := NewDocumentRepository(testutil.DB(t))
	ctx := context.Background()

	seedDocuments(t, repo,
		entity.Document{Subject: entity.SubjectPhysics, Filename: "z.txt", Content: "one"},
		entity.Document{Subject: entity.SubjectMath, Filename: "m.txt", Content: "other subject"},
		entity.Document{Subject: entity.SubjectPhysics, Filename: "a.txt", Content: "two"},
	)

	docs, err := repo.FindAll(ctx,
		specification.BySubject{Subject: string(entity.SubjectPhysics)},
		specification.InsertionOrder{},
	)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "z.txt", docs[0].Filename)
	assert.Equal(t, "a.txt", docs[1].Filename)
}

func TestDocumentRepositoryMetadataRoundTrip(t *testing.T) {
	repo := NewDocumentRepository(testutil.DB(t))
	ctx := context.Background()

	created := seedDocuments(t, repo, entity.Document{
		Subject:  entity.SubjectChemistry,
		Filename: "lab.pdf",
		Content:  "titration",
		Metadata: map[string]interface{}{"pages": float64(3)},
	})

	found, err := repo.FindOne(ctx, specification.ByID{ID: created[0].Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, float64(3), found.Metadata["pages"])

	missing, err := repo.FindOne(ctx, specification.ByID{ID: 9999})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDocumentRepositorySearch(t *testing.T) {
	repo := NewDocumentRepository(testutil.DB(t))
	ctx := context.Background()

	seedDocuments(t, repo,
		entity.Document{Subject: entity.SubjectPhysics, Filename: "notes.txt", Content: "Newton's second law: F=ma"},
		entity.Document{Subject: entity.SubjectPhysics, Filename: "Optics.md", Content: "Snell's law"},
		entity.Document{Subject: entity.SubjectPhysics, Filename: "rates.txt", Content: "100% efficiency is a myth"},
		entity.Document{Subject: entity.SubjectMath, Filename: "newton.txt", Content: "Newton's method"},
		entity.Document{Subject: entity.SubjectPhysics, Filename: "Übung.txt", Content: "Ångström units and Ärger"},
	)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "content match is case-insensitive", query: "NEWTON", want: []string{"notes.txt"}},
		{name: "filename match", query: "optics", want: []string{"Optics.md"}},
		{name: "matches either column", query: "law", want: []string{"notes.txt", "Optics.md"}},
		{name: "percent matches literally", query: "100%", want: []string{"rates.txt"}},
		{name: "underscore does not act as wildcard", query: "F_ma", want: []string{}},
		{name: "no match", query: "entropy", want: []string{}},
		{name: "non-ascii content verbatim", query: "Ångström", want: []string{"Übung.txt"}},
		{name: "non-ascii filename verbatim", query: "Übung", want: []string{"Übung.txt"}},
		{name: "ascii part folds around non-ascii", query: "ÄRGER", want: []string{"Übung.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := repo.FindAll(ctx,
				specification.BySubject{Subject: string(entity.SubjectPhysics)},
				specification.DocumentSearchQuery{Query: tt.query},
				specification.InsertionOrder{},
			)
			require.NoError(t, err)

			got := make([]string, 0, len(docs))
			for _, d := range docs {
				got = append(got, d.Filename)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
