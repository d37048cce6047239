package router

import (
	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/handler"
	"github.com/govjobs/govjobs-backend/internal/mailer"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Services groups the service layer built over one set of repositories.
type Services struct {
	Auth          *service.AuthService
	Admin         *service.AdminService
	Category      *service.CategoryService
	Job           *service.JobService
	Result        *service.ResultService
	AdmitCard     *service.AdmitCardService
	Syllabus      *service.SyllabusService
	PreviousPaper *service.PreviousPaperService
	Material      *service.MaterialService
	NewsTicker    *service.NewsTickerService
	Contact       *service.ContactService
	Dashboard     *service.DashboardService
	Export        *service.ExportService
}

// NewServices wires every service to repos.
func NewServices(cfg *config.Config, repos repository.Repositories, sender mailer.Sender, log zerolog.Logger) *Services {
	auth := service.NewAuthService(cfg)
	return &Services{
		Auth:          auth,
		Admin:         service.NewAdminService(repos.Admins, auth, log),
		Category:      service.NewCategoryService(repos.Categories, log),
		Job:           service.NewJobService(repos.Jobs, repos.Categories, log),
		Result:        service.NewResultService(repos.Results, log),
		AdmitCard:     service.NewAdmitCardService(repos.AdmitCards, log),
		Syllabus:      service.NewSyllabusService(repos.Syllabus, log),
		PreviousPaper: service.NewPreviousPaperService(repos.PreviousPapers, log),
		Material:      service.NewMaterialService(repos.Materials, log),
		NewsTicker:    service.NewNewsTickerService(repos.NewsTicker, log),
		Contact:       service.NewContactService(sender, log),
		Dashboard:     service.NewDashboardService(repos.Dashboard),
		Export:        service.NewExportService(repos.Jobs, repos.Categories, log),
	}
}

// NewHandlers builds the HTTP handlers. pool is only used for the system
// snapshot and may be nil.
func NewHandlers(svcs *Services, pool *pgxpool.Pool, log zerolog.Logger) *Handlers {
	return &Handlers{
		Auth:     handler.NewAuthHandler(svcs.Admin, log),
		Category: handler.NewCategoryHandler(svcs.Category, log),
		Job:      handler.NewJobHandler(svcs.Job, log),
		Result: handler.NewContentHandler[model.Result, model.CreateResultRequest, model.UpdateResultRequest](
			svcs.Result, "Result", log),
		AdmitCard: handler.NewContentHandler[model.AdmitCard, model.CreateAdmitCardRequest, model.UpdateAdmitCardRequest](
			svcs.AdmitCard, "Admit card", log),
		Syllabus: handler.NewContentHandler[model.Syllabus, model.CreateSyllabusRequest, model.UpdateSyllabusRequest](
			svcs.Syllabus, "Syllabus", log),
		PreviousPaper: handler.NewContentHandler[model.PreviousPaper, model.CreatePreviousPaperRequest, model.UpdatePreviousPaperRequest](
			svcs.PreviousPaper, "Previous paper", log),
		Material: handler.NewContentHandler[model.Material, model.CreateMaterialRequest, model.UpdateMaterialRequest](
			svcs.Material, "Material", log),
		NewsTicker: handler.NewNewsTickerHandler(svcs.NewsTicker, log),
		Contact:    handler.NewContactHandler(svcs.Contact, log),
		Dashboard:  handler.NewDashboardHandler(svcs.Dashboard, log),
		Export:     handler.NewExportHandler(svcs.Export, log),
		System:     handler.NewSystemHandler(pool, log),
	}
}
