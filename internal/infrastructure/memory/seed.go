package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/directorio-escolar/internal/domain/entity"
)

var (
	seedGivenNames = []string{"Ana", "Bruno", "Camila", "Diego", "Elena", "Fabián", "Gabriela", "Hugo", "Irene", "Jorge", "Karen", "Luis", "María", "Nicolás", "Olga", "Pedro", "Rocío", "Sergio", "Tania", "Úrsula"}
	seedSurnames   = []string{"Quispe", "Huamán", "Flores", "Rojas", "Mamani", "Sánchez", "García", "Torres", "Díaz", "Chávez", "Ramírez", "Ñahui"}
	seedGrades     = []string{"1ro Primaria", "2do Primaria", "3ro Primaria", "4to Primaria", "5to Primaria", "6to Primaria", "1ro Secundaria", "2do Secundaria", "3ro Secundaria", "4to Secundaria", "5to Secundaria"}
	seedSections   = []string{"A", "B", "C"}
	seedAreas      = []string{"Dirección", "Matemáticas", "Comunicación", "Ciencias", "Secretaría", "Tesorería", "Mantenimiento", "Psicología"}
	seedRelations  = []string{"Madre", "Padre", "Tutor Legal", "Abuela"}
)

// SeedPeople directorio de demostración determinista: personal, estudiantes y apoderados.
func SeedPeople() []entity.Person {
	base := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	people := make([]entity.Person, 0, 96)

	staffCategories := []entity.StaffCategory{
		entity.CategoryDirector, entity.CategoryTeacher, entity.CategoryTeacher, entity.CategoryTeacher,
		entity.CategoryAdministrative, entity.CategoryAdministrative, entity.CategorySupport, entity.CategorySupport,
	}
	for i, cat := range staffCategories {
		p := entity.NewStaff(entity.Staff{
			DNI:      fmt.Sprintf("4%07d", 1000+i),
			Name:     seedName(i, 3),
			Area:     seedAreas[i%len(seedAreas)],
			Category: cat,
			Phone:    fmt.Sprintf("9%08d", 10000000+i*7919),
		}, seedStatus(i, 11), staffTags(cat)...)
		if i%3 != 2 {
			login := base.Add(time.Duration(i) * 26 * time.Hour)
			p.LastLogin = &login
		}
		people = append(people, p)
	}

	for i := range 64 {
		doc := fmt.Sprintf("7%07d", 2000+i)
		avg := decimal.NewFromInt(int64(9+(i*37)%11)).Add(decimal.New(int64((i*13)%4)*25, -2))
		att := decimal.NewFromInt(int64(70 + (i*17)%31))
		risk := avg.LessThan(decimal.NewFromInt(11))
		var tags []string
		if risk {
			tags = append(tags, "Riesgo académico")
		}
		if i%9 == 0 {
			tags = append(tags, "Delegado")
		}
		p := entity.NewStudent(entity.Student{
			DocumentNumber:       doc,
			StudentCode:          "0000" + doc,
			FullName:             seedName(i+5, 7),
			Grade:                seedGrades[i%len(seedGrades)],
			Section:              seedSections[(i/len(seedGrades))%len(seedSections)],
			EnrollmentStatus:     "Matriculado",
			AverageGrade:         avg,
			AttendancePercentage: att,
			TardinessCount:       (i * 5) % 7,
			BehaviorIncidents:    (i * 3) % 4,
			AcademicRisk:         risk,
			TutorIDs:             []string{fmt.Sprintf("1%07d", 3000+i%24)},
		}, seedStatus(i, 13), tags...)
		if i%4 != 3 {
			login := base.Add(time.Duration(i) * 5 * time.Hour)
			p.LastLogin = &login
		}
		people = append(people, p)
	}

	for i := range 24 {
		dni := fmt.Sprintf("1%07d", 3000+i)
		name := seedName(i+11, 5)
		var tags []string
		if i%2 == 0 {
			tags = append(tags, "Verificado")
		}
		people = append(people, entity.NewGuardian(entity.Guardian{
			DNI:      dni,
			Name:     name,
			Email:    fmt.Sprintf("apoderado%d@correo.pe", 3000+i),
			Relation: seedRelations[i%len(seedRelations)],
			Phone:    fmt.Sprintf("9%08d", 30000000+i*104729),
			Verified: i%2 == 0,
		}, seedStatus(i, 7), tags...))
	}
	return people
}

func seedName(i, stride int) string {
	return seedGivenNames[i%len(seedGivenNames)] + " " +
		seedSurnames[(i*stride)%len(seedSurnames)] + " " +
		seedSurnames[(i*stride+5)%len(seedSurnames)]
}

func seedStatus(i, mod int) entity.Status {
	switch i % mod {
	case 1:
		return entity.StatusPending
	case 4:
		return entity.StatusInactive
	case 6:
		return entity.StatusSuspended
	}
	if mod == 13 && i%mod == 9 {
		return entity.StatusGraduated
	}
	return entity.StatusActive
}

func staffTags(cat entity.StaffCategory) []string {
	switch cat {
	case entity.CategoryTeacher:
		return []string{"Tutor"}
	case entity.CategoryDirector:
		return []string{"Comité"}
	}
	return nil
}
