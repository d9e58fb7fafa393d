package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/internal/common"
	"github.com/tobi-salau/resumescan/internal/enrich"
	"github.com/tobi-salau/resumescan/internal/entity"
	"github.com/tobi-salau/resumescan/internal/extract"
	"github.com/tobi-salau/resumescan/internal/repository"
)

// --- fakes ---

type fakeStore struct {
	objects map[string][]byte
	putErr  error
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Put(_ context.Context, path string, data []byte, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[path] = data
	return nil
}

func (s *fakeStore) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	delete(s.objects, path)
	return nil
}

type fakeScanRepo struct {
	scans       map[uuid.UUID]*entity.Scan
	createErr   error
	finalizeErr error
}

func newFakeScanRepo() *fakeScanRepo {
	return &fakeScanRepo{scans: map[uuid.UUID]*entity.Scan{}}
}

func (r *fakeScanRepo) Create(_ context.Context, filename, storagePath string, fileSize int) (*entity.Scan, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	s := &entity.Scan{
		ID:          uuid.New(),
		Filename:    filename,
		StoragePath: storagePath,
		FileSize:    fileSize,
		Status:      string(constants.ScanStatusProcessing),
	}
	r.scans[s.ID] = s
	return s, nil
}

func (r *fakeScanRepo) Finalize(_ context.Context, id uuid.UUID, fields repository.FinalizeFields) (*entity.Scan, error) {
	if r.finalizeErr != nil {
		return nil, r.finalizeErr
	}
	s := r.scans[id]
	s.Status = string(constants.ScanStatusCompleted)
	s.ExtractedName = fields.ExtractedName
	s.ExtractedText = &fields.ExtractedText
	s.SearchQuery = &fields.SearchQuery
	s.Summary = &fields.Summary
	return s, nil
}

func (r *fakeScanRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) (*entity.Scan, error) {
	s := r.scans[id]
	s.Status = string(constants.ScanStatusFailed)
	s.ErrorMessage = &message
	return s, nil
}

func (r *fakeScanRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Scan, error) {
	s, ok := r.scans[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *fakeScanRepo) GetWithResults(_ context.Context, id uuid.UUID) (*entity.ScanWithResults, error) {
	s, err := r.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return &entity.ScanWithResults{Scan: *s}, nil
}

func (r *fakeScanRepo) List(context.Context, int) ([]entity.Scan, error) { return nil, nil }

func (r *fakeScanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.scans, id)
	return nil
}

type fakeResultRepo struct {
	rows     map[uuid.UUID][]entity.ScanResult
	batchErr error // when set, every row in the batch fails
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{rows: map[uuid.UUID][]entity.ScanResult{}}
}

func (r *fakeResultRepo) CreateBatch(_ context.Context, scanID uuid.UUID, hits []entity.NewScanResult) ([]entity.ScanResult, error) {
	if r.batchErr != nil {
		return nil, r.batchErr
	}
	out := make([]entity.ScanResult, 0, len(hits))
	for i, h := range hits {
		content, score := h.Content, h.Score
		out = append(out, entity.ScanResult{
			ID:       uuid.New(),
			ScanID:   scanID,
			Title:    h.Title,
			URL:      h.URL,
			Content:  &content,
			Score:    &score,
			Position: i,
		})
	}
	r.rows[scanID] = out
	return out, nil
}

func (r *fakeResultRepo) ListByScan(_ context.Context, scanID uuid.UUID) ([]entity.ScanResult, error) {
	return r.rows[scanID], nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) Extract(context.Context, []byte, string) (extract.TextExtractionResult, error) {
	if e.err != nil {
		return extract.TextExtractionResult{}, e.err
	}
	return extract.TextExtractionResult{Text: e.text, Pages: 1, SourceType: "PDF"}, nil
}

type fakeEnricher struct {
	resp    enrich.SearchResponse
	err     error
	queries []string
}

func (e *fakeEnricher) Search(_ context.Context, query string) (enrich.SearchResponse, error) {
	e.queries = append(e.queries, query)
	if e.err != nil {
		return enrich.SearchResponse{}, e.err
	}
	return e.resp, nil
}

// --- harness ---

type fixture struct {
	store    *fakeStore
	scans    *fakeScanRepo
	results  *fakeResultRepo
	extract  *fakeExtractor
	enricher *fakeEnricher
	proc     *Processor
}

func newFixture() *fixture {
	f := &fixture{
		store:   newFakeStore(),
		scans:   newFakeScanRepo(),
		results: newFakeResultRepo(),
		extract: &fakeExtractor{text: "Jordan Lee\nSoftware Engineer at Example Corp"},
		enricher: &fakeEnricher{resp: enrich.SearchResponse{
			Answer: "Jordan Lee is a software engineer at Example Corp.",
			Results: []enrich.SearchResult{
				{Title: "Jordan Lee - LinkedIn", URL: "https://example.com/a", Content: "profile", Score: 0.91},
				{Title: "Jordan Lee - GitHub", URL: "https://example.com/b", Content: "repos", Score: 0.84},
			},
		}},
	}
	f.proc = NewProcessor(nil, Config{}, f.store, f.scans, f.results, f.extract, f.enricher)
	return f
}

func validUpload() UploadedFile {
	content := make([]byte, 50<<10)
	return UploadedFile{
		Name:        "jordan-lee-resume.pdf",
		Size:        int64(len(content)),
		ContentType: "application/pdf",
		Content:     content,
	}
}

// --- tests ---

func TestScanDocumentHappyPath(t *testing.T) {
	f := newFixture()
	out, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.NoError(t, err)

	assert.Equal(t, string(constants.ScanStatusCompleted), out.Scan.Status)
	require.NotNil(t, out.Scan.ExtractedName)
	assert.Equal(t, "Jordan Lee", *out.Scan.ExtractedName)
	require.NotNil(t, out.Scan.SearchQuery)
	assert.Equal(t, "Jordan Lee professional background work experience", *out.Scan.SearchQuery)
	require.NotNil(t, out.Scan.Summary)
	assert.Equal(t, "Jordan Lee is a software engineer at Example Corp.", *out.Scan.Summary)

	require.Len(t, out.Results, 2)
	for i, res := range out.Results {
		assert.Equal(t, out.Scan.ID, res.ScanID)
		assert.Equal(t, i, res.Position)
	}
	// the uploaded object is still in the store
	assert.Len(t, f.store.objects, 1)
	assert.Empty(t, f.store.deleted)
}

func TestScanDocumentRejectsWrongContentType(t *testing.T) {
	f := newFixture()
	file := validUpload()
	file.ContentType = "image/png"

	_, err := f.proc.ScanDocument(context.Background(), file)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	// no side effects at all
	assert.Empty(t, f.store.objects)
	assert.Empty(t, f.scans.scans)
}

func TestScanDocumentRejectsOversizeBeforeSideEffects(t *testing.T) {
	f := newFixture()
	file := validUpload()
	file.Size = constants.MaxUploadBytes + 1

	for i := 0; i < 2; i++ {
		_, err := f.proc.ScanDocument(context.Background(), file)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Empty(t, f.store.objects)
		assert.Empty(t, f.scans.scans)
	}
}

func TestScanDocumentRejectsEmptyUpload(t *testing.T) {
	f := newFixture()
	file := validUpload()
	file.Content = nil
	file.Size = 0

	_, err := f.proc.ScanDocument(context.Background(), file)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestScanDocumentStoreFailureLeavesNothing(t *testing.T) {
	f := newFixture()
	f.store.putErr = errors.New("bucket unavailable")

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStore)
	assert.Empty(t, f.scans.scans)
}

func TestScanDocumentCompensatesRecordFailure(t *testing.T) {
	f := newFixture()
	f.scans.createErr = errors.New("connection reset")

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistence)
	// the just-written object was deleted: no orphaned blob
	require.Len(t, f.store.deleted, 1)
	assert.Empty(t, f.store.objects)
}

func TestScanDocumentExtractionFailureIsRecorded(t *testing.T) {
	f := newFixture()
	f.extract.err = errors.New("pdfcpu read: malformed xref")

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
	// display-safe message, not the parser internals
	assert.Equal(t, msgExtractionFailed, err.Error())

	require.Len(t, f.scans.scans, 1)
	for _, s := range f.scans.scans {
		assert.Equal(t, string(constants.ScanStatusFailed), s.Status)
		require.NotNil(t, s.ErrorMessage)
		assert.Equal(t, msgExtractionFailed, *s.ErrorMessage)
		assert.Nil(t, s.ExtractedText)
	}
	// uploaded object retained: a failed extraction is a recorded outcome
	assert.Len(t, f.store.objects, 1)
	assert.Empty(t, f.store.deleted)
	assert.Empty(t, f.results.rows)
}

func TestScanDocumentEnrichmentFailureIsRecorded(t *testing.T) {
	f := newFixture()
	f.enricher.err = errors.New("tavily status 500: upstream")

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEnrichment)
	assert.Equal(t, msgEnrichmentFailed, err.Error())

	for _, s := range f.scans.scans {
		assert.Equal(t, string(constants.ScanStatusFailed), s.Status)
	}
	assert.Len(t, f.store.objects, 1)
	assert.Empty(t, f.results.rows)
}

func TestScanDocumentDefaultSummaryWhenNoAnswer(t *testing.T) {
	f := newFixture()
	f.enricher.resp.Answer = ""

	out, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.NoError(t, err)
	require.NotNil(t, out.Scan.Summary)
	assert.Equal(t, defaultSummary, *out.Scan.Summary)
}

func TestScanDocumentSurvivesResultInsertFailure(t *testing.T) {
	f := newFixture()
	f.results.batchErr = errors.New("unique constraint")

	out, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.NoError(t, err)
	assert.Equal(t, string(constants.ScanStatusCompleted), out.Scan.Status)
	assert.Empty(t, out.Results)
}

func TestScanDocumentFinalizeFailureLeavesProcessing(t *testing.T) {
	f := newFixture()
	f.scans.finalizeErr = errors.New("deadlock detected")

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPersistence)
	for _, s := range f.scans.scans {
		assert.Equal(t, string(constants.ScanStatusProcessing), s.Status)
	}
}

func TestScanDocumentFallbackQueryWithoutName(t *testing.T) {
	f := newFixture()
	f.extract.text = "RESUME\nexperienced backend developer in distributed systems"

	_, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.NoError(t, err)
	require.Len(t, f.enricher.queries, 1)
	assert.Contains(t, f.enricher.queries[0], "professional background")
	assert.Contains(t, f.enricher.queries[0], "experienced backend developer")
}

func TestScanDocumentTruncatesStoredText(t *testing.T) {
	f := newFixture()
	long := "Jordan Lee\n"
	for len(long) < 5000 {
		long += "built and operated large scale ingestion systems "
	}
	f.extract.text = long

	out, err := f.proc.ScanDocument(context.Background(), validUpload())
	require.NoError(t, err)
	require.NotNil(t, out.Scan.ExtractedText)
	assert.LessOrEqual(t, len([]rune(*out.Scan.ExtractedText)), 2000)
}

func TestBuildStoragePathIsUniqueAndSanitized(t *testing.T) {
	a := buildStoragePath("résumé (final).pdf")
	b := buildStoragePath("résumé (final).pdf")
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, " ")
	assert.NotContains(t, a, "(")
	assert.True(t, len(a) > len("scans/"))
}
