package aireport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	employeepkg "github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	employeeerrors "github.com/mskim5976-cpu/hr-ai-system/internal/employee/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/llm"
	aireporterrors "github.com/mskim5976-cpu/hr-ai-system/internal/aireport/errors"
	"github.com/mskim5976-cpu/hr-ai-system/internal/assignment"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/contextutil"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	sitepkg "github.com/mskim5976-cpu/hr-ai-system/internal/site"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GenerateEmployeeComment(ctx context.Context, employeeID string) (ReportResponse, error)
	GenerateStatusReport(ctx context.Context) (ReportResponse, error)
	SummarizeResume(ctx context.Context, req ResumeSummaryRequest) (ReportResponse, error)
	List(ctx context.Context) ([]ReportResponse, error)
}

type service struct {
	repo      Repository
	emplRepo  employeepkg.Repository
	siteRepo  sitepkg.Repository
	asgRepo   assignment.Repository
	completer llm.TextCompleter
	modelName string
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	emplRepo employeepkg.Repository,
	siteRepo sitepkg.Repository,
	asgRepo assignment.Repository,
	completer llm.TextCompleter,
	modelName string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("aireport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("aireport.service")
	}
	return &service{
		repo:      repo,
		emplRepo:  emplRepo,
		siteRepo:  siteRepo,
		asgRepo:   asgRepo,
		completer: completer,
		modelName: modelName,
		logger:    l,
	}
}

// GenerateEmployeeComment writes a short warm introduction for one employee
// from whatever profile fields are filled in.
func (s *service) GenerateEmployeeComment(ctx context.Context, employeeID string) (ReportResponse, error) {
	empl, err := s.emplRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return ReportResponse{}, err
	}

	var sb strings.Builder
	sb.WriteString("Write a warm, professional two to three sentence introduction for this team member.\n")
	fmt.Fprintf(&sb, "Name: %s\n", empl.Name)
	if empl.Department != nil {
		fmt.Fprintf(&sb, "Department: %s\n", empl.Department.Name)
	}
	if empl.Position != nil {
		fmt.Fprintf(&sb, "Position: %s\n", *empl.Position)
	}
	if empl.AppliedPart != nil {
		fmt.Fprintf(&sb, "Specialty: %s\n", *empl.AppliedPart)
	}
	if empl.ProjectHistory != nil {
		fmt.Fprintf(&sb, "Project history: %s\n", *empl.ProjectHistory)
	}
	fmt.Fprintf(&sb, "Employment status: %s\n", empl.Status)

	subjectID := empl.ID
	return s.generate(ctx, KindEmployeeComment, &subjectID, sb.String())
}

// GenerateStatusReport summarizes the current staffing picture across all
// employees, sites, and assignments.
func (s *service) GenerateStatusReport(ctx context.Context) (ReportResponse, error) {
	empls, err := s.emplRepo.FindAll(ctx)
	if err != nil {
		return ReportResponse{}, err
	}
	sites, err := s.siteRepo.FindAll(ctx)
	if err != nil {
		return ReportResponse{}, err
	}
	assignments, err := s.asgRepo.FindAll(ctx)
	if err != nil {
		return ReportResponse{}, err
	}

	today := localdate.Today()

	emplByStatus := map[string]int{}
	for _, e := range empls {
		emplByStatus[e.Status]++
	}
	siteByStatus := map[string]int{}
	for _, st := range sites {
		siteByStatus[sitepkg.DeriveStatus(st.ContractStart, st.ContractEnd, today)]++
	}
	openAssignments := 0
	for _, a := range assignments {
		if a.Status == assignment.StatusInProgress {
			openAssignments++
		}
	}

	var sb strings.Builder
	sb.WriteString("Write a concise staffing status report for management from these figures.\n")
	fmt.Fprintf(&sb, "Date: %s\n", today.String())
	fmt.Fprintf(&sb, "Employees: %d total (%d waiting, %d active, %d dispatched, %d resigned)\n",
		len(empls),
		emplByStatus[employeepkg.StatusWaiting],
		emplByStatus[employeepkg.StatusActive],
		emplByStatus[employeepkg.StatusDispatched],
		emplByStatus[employeepkg.StatusResigned],
	)
	fmt.Fprintf(&sb, "Client sites: %d total (%d pending, %d in progress, %d ended)\n",
		len(sites),
		siteByStatus[sitepkg.StatusPending],
		siteByStatus[sitepkg.StatusInProgress],
		siteByStatus[sitepkg.StatusEnded],
	)
	fmt.Fprintf(&sb, "Assignments: %d total, %d in progress\n", len(assignments), openAssignments)

	return s.generate(ctx, KindStatusReport, nil, sb.String())
}

func (s *service) SummarizeResume(ctx context.Context, req ResumeSummaryRequest) (ReportResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ReportResponse{}, aireporterrors.ErrMissingResumeText
	}

	var sb strings.Builder
	sb.WriteString("Summarize this resume into short sections: profile, key skills, work history, notable projects.\n\n")
	sb.WriteString(text)

	return s.generate(ctx, KindResumeSummary, nil, sb.String())
}

func (s *service) List(ctx context.Context) ([]ReportResponse, error) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list reports failed", zap.Error(err))
		return nil, err
	}

	res := make([]ReportResponse, len(reports))
	for i, r := range reports {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) generate(ctx context.Context, kind string, subjectID *uuid.UUID, prompt string) (ReportResponse, error) {
	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("text generation failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return ReportResponse{}, err
	}

	report := &AIReport{
		ID:        uuid.New(),
		Kind:      kind,
		SubjectID: subjectID,
		Prompt:    prompt,
		Content:   content,
		Model:     s.modelName,
	}
	if uid := contextutil.GetUserID(ctx); uid != "" {
		report.CreatedBy = &uid
	}

	if err := s.repo.Create(ctx, report); err != nil {
		s.logger.Error("persist report failed", zap.String("kind", kind), zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("report generated",
		zap.String("kind", kind),
		zap.String("report_id", report.ID.String()),
	)

	return mapToResponse(*report), nil
}

func mapToResponse(r AIReport) ReportResponse {
	resp := ReportResponse{
		ID:        r.ID.String(),
		Kind:      r.Kind,
		Content:   r.Content,
		Model:     r.Model,
		CreatedAt: r.CreatedAt,
	}
	if r.SubjectID != nil {
		resp.SubjectID = r.SubjectID.String()
	}
	if r.CreatedBy != nil {
		resp.CreatedBy = *r.CreatedBy
	}
	return resp
}
