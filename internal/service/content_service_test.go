package service

import (
	"context"
	"testing"

	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestResultStatusCoercedOnCreate(t *testing.T) {
	svc := NewResultService(memory.New().Results(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		in   string
		want model.ResultStatus
	}{
		{"", model.ResultStatusPending},
		{"RELEASED", model.ResultStatusReleased},
		{"released", model.ResultStatusReleased},
		{"DONE", model.ResultStatusPending},
	}
	for _, tt := range tests {
		r, err := svc.Create(ctx, model.CreateResultRequest{
			ExamName:     "CGL Tier 1",
			Organization: "SSC",
			ResultDate:   "2025-03-01",
			Status:       tt.in,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Status, "status %q", tt.in)
		assert.Equal(t, "2025-03-01", r.ResultDate.String())
	}
}

func TestResultUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewResultService(memory.New().Results(), zerolog.Nop())
	ctx := context.Background()

	r, err := svc.Create(ctx, model.CreateResultRequest{
		ExamName: "NTPC", Organization: "RRB", ResultDate: "2025-01-10",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, r.ID.String(), model.UpdateResultRequest{Status: strPtr("DONE")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.Update(ctx, r.ID.String(), model.UpdateResultRequest{
		Status:      strPtr("released"),
		DownloadURL: strPtr("https://rrb.example/result.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResultStatusReleased, updated.Status)
	require.NotNil(t, updated.DownloadURL)

	_, err = svc.Update(ctx, r.ID.String(), model.UpdateResultRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestResultCreateRejectsBadDate(t *testing.T) {
	svc := NewResultService(memory.New().Results(), zerolog.Nop())

	_, err := svc.Create(context.Background(), model.CreateResultRequest{
		ExamName: "PO", Organization: "IBPS", ResultDate: "01/02/2025",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "result_date")
}

func TestAdmitCardStatusAsymmetry(t *testing.T) {
	svc := NewAdmitCardService(memory.New().AdmitCards(), zerolog.Nop())
	ctx := context.Background()

	a, err := svc.Create(ctx, model.CreateAdmitCardRequest{
		ExamName: "Agniveer", Organization: "Indian Army", ExamDate: "2025-06-20", Status: "RELEASED",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AdmitCardStatusPending, a.Status)

	_, err = svc.Update(ctx, a.ID.String(), model.UpdateAdmitCardRequest{Status: strPtr("RELEASED")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	a, err = svc.Update(ctx, a.ID.String(), model.UpdateAdmitCardRequest{Status: strPtr("available")})
	require.NoError(t, err)
	assert.Equal(t, model.AdmitCardStatusAvailable, a.Status)
}

func TestAdmitCardListOrder(t *testing.T) {
	svc := NewAdmitCardService(memory.New().AdmitCards(), zerolog.Nop())
	ctx := context.Background()

	for _, d := range []string{"2025-01-01", "2025-09-01", "2025-05-01"} {
		_, err := svc.Create(ctx, model.CreateAdmitCardRequest{ExamName: "X", Organization: "Y", ExamDate: d})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-09-01", list[0].ExamDate.String())
	assert.Equal(t, "2025-01-01", list[2].ExamDate.String())
}

func TestSyllabusLifecycle(t *testing.T) {
	svc := NewSyllabusService(memory.New().Syllabus(), zerolog.Nop())
	ctx := context.Background()

	s, err := svc.Create(ctx, model.CreateSyllabusRequest{
		ExamName: "CHSL", Organization: "SSC", DownloadURL: strPtr("https://ssc.example/chsl.pdf"),
	})
	require.NoError(t, err)

	s, err = svc.Update(ctx, s.ID.String(), model.UpdateSyllabusRequest{DownloadURL: strPtr("  ")})
	require.NoError(t, err)
	assert.Nil(t, s.DownloadURL)

	_, err = svc.Update(ctx, s.ID.String(), model.UpdateSyllabusRequest{ExamName: strPtr(" ")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "exam_name")

	require.NoError(t, svc.Delete(ctx, s.ID.String()))
	_, err = svc.Get(ctx, s.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, s.ID.String()), ErrNotFound)
}

func TestPreviousPaperYearOrderingAndUpdate(t *testing.T) {
	svc := NewPreviousPaperService(memory.New().PreviousPapers(), zerolog.Nop())
	ctx := context.Background()

	for _, y := range []int{2019, 2023, 2021} {
		_, err := svc.Create(ctx, model.CreatePreviousPaperRequest{
			ExamName: "GD Constable", Organization: "SSC", Year: y, PaperType: "Shift 1",
		})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{2023, 2021, 2019}, []int{list[0].Year, list[1].Year, list[2].Year})

	p, err := svc.Update(ctx, list[2].ID.String(), model.UpdatePreviousPaperRequest{Year: intPtr(2024)})
	require.NoError(t, err)
	assert.Equal(t, 2024, p.Year)
}

func TestMaterialGetMalformedID(t *testing.T) {
	svc := NewMaterialService(memory.New().Materials(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	m, err := svc.Create(context.Background(), model.CreateMaterialRequest{Organization: "UPSC", Subject: "Polity"})
	require.NoError(t, err)
	m, err = svc.Update(context.Background(), m.ID.String(), model.UpdateMaterialRequest{Subject: strPtr("History")})
	require.NoError(t, err)
	assert.Equal(t, "History", m.Subject)
}

func TestNewsTickerDefaultsAndVisibility(t *testing.T) {
	svc := NewNewsTickerService(memory.New().NewsTicker(), zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Create(ctx, model.CreateNewsTickerRequest{Content: "SSC CGL notification out"})
	require.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Zero(t, first.DisplayOrder)

	hidden, err := svc.Create(ctx, model.CreateNewsTickerRequest{Content: "draft", IsActive: boolPtr(false)})
	require.NoError(t, err)
	pinned, err := svc.Create(ctx, model.CreateNewsTickerRequest{Content: "pinned", DisplayOrder: intPtr(-1)})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, pinned.ID, active[0].ID)
	assert.Equal(t, first.ID, active[1].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	updated, err := svc.Update(ctx, hidden.ID.String(), model.UpdateNewsTickerRequest{IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.UpdatedAt.After(hidden.UpdatedAt))

	_, err = svc.Update(ctx, hidden.ID.String(), model.UpdateNewsTickerRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestDashboardCounts(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	news := NewNewsTickerService(db.NewsTicker(), zerolog.Nop())
	_, err := news.Create(ctx, model.CreateNewsTickerRequest{Content: "a"})
	require.NoError(t, err)
	_, err = news.Create(ctx, model.CreateNewsTickerRequest{Content: "b", IsActive: boolPtr(false)})
	require.NoError(t, err)
	_, err = NewCategoryService(db.Categories(), zerolog.Nop()).Create(ctx, "Railways")
	require.NoError(t, err)

	counts, err := NewDashboardService(db.Dashboard()).Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Categories)
	assert.Equal(t, 0, counts.Jobs)
	assert.Equal(t, 1, counts.NewsTickerActive)
	assert.Equal(t, 2, counts.NewsTickerTotal)
}
