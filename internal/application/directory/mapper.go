package directory

import (
	"github.com/jhoicas/directorio-escolar/internal/application/dto"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

// ToPersonResponse aplana una persona para la respuesta HTTP.
func ToPersonResponse(p entity.Person, emailDomain string) dto.PersonResponse {
	out := dto.PersonResponse{
		Identity:  dirdomain.Identity(p),
		Kind:      p.Kind.String(),
		Name:      dirdomain.DisplayName(p),
		Role:      dirdomain.DerivedRole(p),
		Level:     dirdomain.Level(p),
		Email:     dirdomain.DerivedEmail(p, emailDomain),
		Status:    string(p.Status),
		Tags:      append([]string{}, p.Tags...),
		AvatarURL: p.AvatarURL,
		LastLogin: p.LastLogin,
	}
	switch p.Kind {
	case entity.KindStudent:
		s := p.Student
		avg, att := s.AverageGrade, s.AttendancePercentage
		out.StudentCode = s.StudentCode
		out.Grade = s.Grade
		out.Section = s.Section
		out.AverageGrade = &avg
		out.AttendancePercentage = &att
		out.AcademicRisk = s.AcademicRisk
	case entity.KindStaff:
		out.Area = p.Staff.Area
		out.Category = string(p.Staff.Category)
		out.Phone = p.Staff.Phone
	case entity.KindGuardian:
		out.Relation = p.Guardian.Relation
		out.Verified = p.Guardian.Verified
		out.Phone = p.Guardian.Phone
	}
	return out
}

// ToPersonResponses aplica ToPersonResponse a una lista.
func ToPersonResponses(people []entity.Person, emailDomain string) []dto.PersonResponse {
	out := make([]dto.PersonResponse, len(people))
	for i, p := range people {
		out[i] = ToPersonResponse(p, emailDomain)
	}
	return out
}

// ToActivityLogResponse entrada de bitácora para HTTP.
func ToActivityLogResponse(l entity.ActivityLog) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:         l.ID,
		Timestamp:  l.Timestamp,
		Actor:      l.Actor,
		Action:     string(l.Action),
		Details:    l.Details,
		TargetUser: l.TargetUser,
		Count:      l.Count,
	}
}

// ToPendingActionResponse acción pendiente para HTTP.
func ToPendingActionResponse(p PendingAction) dto.PendingActionResponse {
	return dto.PendingActionResponse{
		ID:             p.ID,
		Kind:           string(p.Kind),
		Scope:          string(p.Scope),
		Count:          len(p.Targets),
		Title:          p.Title,
		Message:        p.Message,
		ConfirmText:    p.ConfirmText,
		RequiresReason: p.RequiresReason,
		CreatedAt:      p.CreatedAt,
	}
}

// ToActionResultResponse resultado de acción para HTTP.
func ToActionResultResponse(r ActionResult) dto.ActionResultResponse {
	out := dto.ActionResultResponse{
		Kind:      string(r.Kind),
		Scope:     string(r.Scope),
		Cancelled: r.Cancelled,
		Affected:  r.Affected,
	}
	if r.Log != nil {
		l := ToActivityLogResponse(*r.Log)
		out.Log = &l
	}
	if r.Artifact != nil {
		out.Artifact = &dto.ArtifactInfoResponse{
			Filename:    r.Artifact.Filename,
			ContentType: r.Artifact.ContentType,
			Size:        len(r.Artifact.Data),
			Digest:      r.Artifact.Digest,
			Content:     r.Artifact.Data,
		}
	}
	return out
}
