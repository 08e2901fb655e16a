package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdir "github.com/jhoicas/directorio-escolar/internal/application/directory"
	"github.com/jhoicas/directorio-escolar/internal/application/dto"
	"github.com/jhoicas/directorio-escolar/internal/domain"
	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
	"github.com/jhoicas/directorio-escolar/internal/domain/repository"
)

func TestCoordinator_ActivarSeleccionDeVariasVistas(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{
		student("111", "Ana", "3A", entity.StatusPending),
		staff("222", "Beto", entity.StatusInactive),
		guardian("333", "Carla", entity.StatusPending),
	})
	s := f.session(nil)

	s.UpdateFilters(appdir.FilterPatch{Status: strptr("Pendiente")})
	s.ToggleSelection("111")
	s.UpdateFilters(appdir.FilterPatch{Status: strptr("Inactivo")})
	s.ToggleSelection("222")

	confirmer := &fixedConfirmer{decision: appdir.Decision{Confirmed: true}}
	res, err := f.coord.Dispatch(ctx, s, appdir.ActionActivate, confirmer)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, entity.StatusActive, statusOf(t, f.roster, "111"))
	assert.Equal(t, entity.StatusActive, statusOf(t, f.roster, "222"))
	assert.Equal(t, entity.StatusPending, statusOf(t, f.roster, "333"))

	require.Equal(t, 1, f.logs.Len(), "una sola entrada por lote")
	require.NotNil(t, res.Log)
	assert.Equal(t, 2, res.Log.Count)
	assert.Equal(t, entity.ActionStatusChange, res.Log.Action)
	assert.Empty(t, s.SelectedIDs())
	assert.Len(t, confirmer.asked, 1)
	assert.Equal(t, "Activar Usuarios", confirmer.asked[0].Title)
	assert.Len(t, f.notifier.messages, 1)
}

func TestCoordinator_CancelarNoTieneEfecto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{
		student("111", "Ana", "3A", entity.StatusPending),
		student("222", "Beto", "3A", entity.StatusPending),
	})
	s := f.session(nil)
	s.UpdateFilters(appdir.FilterPatch{Status: strptr("Pendiente")})
	s.SelectPage(true)

	p, err := f.coord.Request(s, appdir.ActionResendInvitation)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2, len(p.Targets))

	res, err := f.coord.Resolve(ctx, p.ID, appdir.Decision{Confirmed: false})
	require.NoError(t, err, "cancelar no es un error")
	assert.True(t, res.Cancelled)

	assert.Equal(t, entity.StatusPending, statusOf(t, f.roster, "111"))
	assert.Zero(t, f.logs.Len())
	assert.Equal(t, []string{"111", "222"}, s.SelectedIDs())
	assert.Empty(t, f.notifier.messages)

	_, err = f.coord.Resolve(ctx, p.ID, appdir.Decision{Confirmed: true})
	assert.ErrorIs(t, err, domain.ErrPendingActionNotFound, "una pendiente se resuelve una sola vez")
}

func TestCoordinator_PendienteNoTieneEfectoHastaResolver(t *testing.T) {
	f := newFixture(t, []entity.Person{student("111", "Ana", "3A", entity.StatusActive)})
	s := f.session(nil)
	s.ToggleSelection("111")

	p, err := f.coord.Request(s, appdir.ActionSuspend)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, statusOf(t, f.roster, "111"))
	assert.Len(t, f.coord.PendingFor(s.ID()), 1)

	_, err = f.coord.Resolve(context.Background(), p.ID, appdir.Decision{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuspended, statusOf(t, f.roster, "111"))
	assert.Empty(t, f.coord.PendingFor(s.ID()))
}

func TestCoordinator_AccionDesconocidaEsNoOp(t *testing.T) {
	f := newFixture(t, []entity.Person{student("111", "Ana", "3A", entity.StatusActive)})
	s := f.session(nil)
	s.ToggleSelection("111")

	p, err := f.coord.Request(s, appdir.ActionKind("borrar-todo"))
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.Zero(t, f.logs.Len())
	assert.Equal(t, []string{"111"}, s.SelectedIDs())
}

func TestCoordinator_SeleccionVacia(t *testing.T) {
	f := newFixture(t, []entity.Person{student("111", "Ana", "3A", entity.StatusActive)})
	_, err := f.coord.Request(f.session(nil), appdir.ActionExport)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestCoordinator_ExportarConservaSeleccion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{
		student("111", "Ana", "3A", entity.StatusActive),
		guardian("333", "Carla", entity.StatusActive),
	})
	s := f.session(nil)
	s.SelectPage(true)

	res, err := f.coord.Dispatch(ctx, s, appdir.ActionExport, &fixedConfirmer{decision: appdir.Decision{Confirmed: true}})
	require.NoError(t, err)
	require.NotNil(t, res.Artifact)
	assert.Equal(t, "export.csv", res.Artifact.Filename)
	assert.Len(t, f.exporter.got, 2)
	assert.Equal(t, entity.ActionExport, res.Log.Action)
	assert.Len(t, s.SelectedIDs(), 2, "exportar no consume la selección")
}

func TestCoordinator_GenerarDocumentoSoloEstudiantes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{
		student("111", "Ana", "3A", entity.StatusActive),
		guardian("333", "Carla", entity.StatusActive),
	})
	s := f.session(nil)
	s.SelectPage(true)

	res, err := f.coord.Dispatch(ctx, s, appdir.ActionGenerateDocument, &fixedConfirmer{decision: appdir.Decision{Confirmed: true}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)
	assert.Len(t, f.exporter.got, 1)
	assert.Len(t, s.SelectedIDs(), 2)

	s.ClearSelection()
	s.ToggleSelection("333")
	_, err = f.coord.Dispatch(ctx, s, appdir.ActionGenerateDocument, &fixedConfirmer{decision: appdir.Decision{Confirmed: true}})
	assert.ErrorIs(t, err, domain.ErrActionNotApplicable)
}

func TestCoordinator_SuspenderIndividualConMotivo(t *testing.T) {
	ctx := appdir.WithActor(context.Background(), "Sub Director")
	f := newFixture(t, []entity.Person{staff("40000001", "Ana Torres", entity.StatusActive)})

	p, res, err := f.coord.RequestSingle(ctx, "40000001", appdir.ActionSuspend)
	require.NoError(t, err)
	assert.Nil(t, res)
	require.NotNil(t, p)
	assert.True(t, p.RequiresReason)
	assert.Contains(t, p.Message, "Ana Torres")

	res, err = f.coord.Resolve(ctx, p.ID, appdir.Decision{Confirmed: true, Reason: "Licencia"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuspended, statusOf(t, f.roster, "40000001"))
	assert.Contains(t, res.Log.Details, "Motivo: Licencia")
	assert.Equal(t, "Ana Torres", res.Log.TargetUser)
	assert.Equal(t, "Sub Director", res.Log.Actor)
}

func TestCoordinator_AccionesIndividualesSinConfirmacion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{
		student("70000001", "Ana", "3A", entity.StatusActive),
		guardian("10000001", "Carla", entity.StatusActive),
	})

	p, res, err := f.coord.RequestSingle(ctx, "10000001", appdir.ActionResendInvitation)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, "Se reenvió la invitación a 10000001@correo.pe", res.Log.Details)

	_, res, err = f.coord.RequestSingle(ctx, "70000001", appdir.ActionGenerateCarnet)
	require.NoError(t, err)
	assert.Equal(t, "carnets.pdf", res.Artifact.Filename)

	_, _, err = f.coord.RequestSingle(ctx, "10000001", appdir.ActionGenerateCarnet)
	assert.ErrorIs(t, err, domain.ErrActionNotApplicable)

	_, _, err = f.coord.RequestSingle(ctx, "99999999", appdir.ActionResetPassword)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCoordinator_ResetearContrasenaSincrono(t *testing.T) {
	f := newFixture(t, []entity.Person{staff("40000001", "Ana", entity.StatusActive)})
	confirmer := &fixedConfirmer{decision: appdir.Decision{Confirmed: true}}

	res, err := f.coord.DispatchSingle(context.Background(), "40000001", appdir.ActionResetPassword, confirmer)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionPasswordReset, res.Log.Action)
	assert.Contains(t, confirmer.asked[0].Message, "40000001@colegio.edu.pe")
}

func TestCoordinator_SaveUser_Alta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{staff("40000001", "Ana", entity.StatusActive)})

	p, created, err := f.coord.SaveUser(ctx, dto.SaveUserRequest{UserType: "Estudiante", Name: "Nuevo Alumno", Grade: "1ro"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.StatusPending, p.Status)
	assert.Equal(t, "12345678", p.Student.DocumentNumber)
	assert.Equal(t, "000012345678", p.Student.StudentCode)

	people, _ := f.roster.Snapshot()
	assert.Len(t, people, 2)

	logs, err := f.coord.ActivityLog(ctx, repository.ActivityLogFilter{Action: entity.ActionCreate})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Details, "Nuevo Alumno (Estudiante)")
}

func TestCoordinator_SaveUser_ActualizaPorIdentidad(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []entity.Person{staff("40000001", "Ana", entity.StatusActive)})

	p, created, err := f.coord.SaveUser(ctx, dto.SaveUserRequest{Identity: "40000001", UserType: "Director", Area: "Dirección"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Ana", p.Staff.Name, "los campos vacíos se conservan")
	assert.Equal(t, entity.CategoryDirector, p.Staff.Category)
	assert.Equal(t, "Dirección", p.Staff.Area)

	_, _, err = f.coord.SaveUser(ctx, dto.SaveUserRequest{Identity: "40000001", UserType: "Apoderado"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, _, err = f.coord.SaveUser(ctx, dto.SaveUserRequest{UserType: "Alumno"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
