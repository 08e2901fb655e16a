package directory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/directorio-escolar/internal/application/dto"
	"github.com/jhoicas/directorio-escolar/internal/domain"
	dirdomain "github.com/jhoicas/directorio-escolar/internal/domain/directory"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

var validate = validator.New()

func newIdentity() string {
	return strconv.Itoa(rand.IntN(90000000) + 10000000)
}

// SaveUser crea o actualiza una persona. Una persona nueva queda Pendiente con
// identidad de 8 dígitos; una existente se mezcla campo a campo con lo recibido.
func (c *Coordinator) SaveUser(ctx context.Context, in dto.SaveUserRequest) (entity.Person, bool, error) {
	if err := validate.Struct(in); err != nil {
		return entity.Person{}, false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if in.Identity != "" {
		if existing, ok := c.roster.Find(in.Identity); ok {
			return c.updateUser(ctx, existing, in)
		}
	}
	return c.createUser(ctx, in)
}

func (c *Coordinator) createUser(ctx context.Context, in dto.SaveUserRequest) (entity.Person, bool, error) {
	id := in.Identity
	if id == "" {
		for {
			id = c.newID()
			if _, taken := c.roster.Find(id); !taken {
				break
			}
		}
	}
	name := strings.TrimSpace(in.Name)
	tags := slices.Clone(in.Tags)

	var p entity.Person
	switch in.UserType {
	case entity.RoleStudent:
		if name == "" {
			name = "Nuevo Estudiante"
		}
		p = entity.NewStudent(entity.Student{
			DocumentNumber:       id,
			StudentCode:          "0000" + id,
			FullName:             name,
			Grade:                in.Grade,
			Section:              in.Section,
			EnrollmentStatus:     "Matriculado",
			AverageGrade:         decimal.Zero,
			AttendancePercentage: decimal.NewFromInt(100),
		}, entity.StatusPending, tags...)
	case entity.RoleGuardian:
		if name == "" {
			name = "Nuevo Apoderado"
		}
		relation := in.Relation
		if relation == "" {
			relation = entity.RoleGuardian
		}
		p = entity.NewGuardian(entity.Guardian{
			DNI:      id,
			Name:     name,
			Email:    in.Email,
			Relation: relation,
			Phone:    in.Phone,
		}, entity.StatusPending, tags...)
	default:
		if name == "" {
			name = "Nuevo Personal"
		}
		category := entity.StaffCategory(in.UserType)
		if !slices.Contains(entity.StaffCategories, category) {
			category = entity.CategoryTeacher
		}
		p = entity.NewStaff(entity.Staff{
			DNI:      id,
			Name:     name,
			Area:     in.Area,
			Category: category,
			Phone:    in.Phone,
		}, entity.StatusPending, tags...)
	}
	p.AvatarURL = "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"

	if _, err := c.roster.Save(ctx, p); err != nil {
		return entity.Person{}, false, err
	}
	if _, err := c.appendLog(ctx, entity.ActionCreate,
		fmt.Sprintf("Se creó el perfil para %s (%s).", name, in.UserType), name, 1); err != nil {
		return entity.Person{}, false, err
	}
	c.notify(ctx, fmt.Sprintf("Usuario %q creado exitosamente. Se ha enviado una invitación.", name),
		&NotificationAction{Label: "Ver Usuario", Path: "/usuarios?q=" + id})
	c.metrics.ActionApplied("create-user", string(ScopeSingle), 1)
	return p, true, nil
}

func (c *Coordinator) updateUser(ctx context.Context, existing entity.Person, in dto.SaveUserRequest) (entity.Person, bool, error) {
	if kindOfUserType(in.UserType) != existing.Kind {
		return entity.Person{}, false, domain.ErrConflict
	}
	p := existing.Clone()
	name := strings.TrimSpace(in.Name)
	if in.Status != "" {
		p.Status = entity.Status(in.Status)
	}
	if in.Tags != nil {
		p.Tags = slices.Clone(in.Tags)
	}

	switch p.Kind {
	case entity.KindStudent:
		s := p.Student
		setIf(&s.FullName, name)
		setIf(&s.Grade, in.Grade)
		setIf(&s.Section, in.Section)
	case entity.KindGuardian:
		g := p.Guardian
		setIf(&g.Name, name)
		setIf(&g.Email, in.Email)
		setIf(&g.Relation, in.Relation)
		setIf(&g.Phone, in.Phone)
	case entity.KindStaff:
		s := p.Staff
		setIf(&s.Name, name)
		setIf(&s.Area, in.Area)
		setIf(&s.Phone, in.Phone)
		if cat := entity.StaffCategory(in.UserType); slices.Contains(entity.StaffCategories, cat) {
			s.Category = cat
		}
	}

	if _, err := c.roster.Save(ctx, p); err != nil {
		return entity.Person{}, false, err
	}
	display := dirdomain.DisplayName(p)
	if _, err := c.appendLog(ctx, entity.ActionUpdate, "Se actualizaron los datos del perfil.", display, 1); err != nil {
		return entity.Person{}, false, err
	}
	c.notify(ctx, fmt.Sprintf("Usuario %q actualizado exitosamente.", display), nil)
	c.metrics.ActionApplied("update-user", string(ScopeSingle), 1)
	return p, false, nil
}

func kindOfUserType(t string) entity.Kind {
	switch t {
	case entity.RoleStudent:
		return entity.KindStudent
	case entity.RoleGuardian:
		return entity.KindGuardian
	}
	return entity.KindStaff
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func sortPending(list []PendingAction) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
}
