package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allodocta/backoffice/internal/client/models"
	"github.com/allodocta/backoffice/internal/client/services"
)

type fakeMedical struct {
	services.MedicalService

	exportRows []models.PharmacyExport
	bulk       []models.MedecinePayload
	guard      map[string]any
}

func (f *fakeMedical) PharmaciesForExport(ctx context.Context) ([]models.PharmacyExport, error) {
	return f.exportRows, nil
}

func (f *fakeMedical) CreateMedecineBulk(ctx context.Context, payloads []models.MedecinePayload) (string, error) {
	f.bulk = payloads
	return "Import terminé", nil
}

func (f *fakeMedical) UpdateGuardPharmacy(ctx context.Context, fields map[string]any) (string, error) {
	f.guard = fields
	return "Pharmacies de garde mises à jour", nil
}

func TestReadMedecineCSV(t *testing.T) {
	input := strings.NewReader(
		"code,name,dci,group,category,regime,price\n" +
			"M001,Doliprane,Paracétamol,Antalgique,Comprimé,Libre,1500\n" +
			"M002,Efferalgan,Paracétamol,Antalgique,Effervescent,Libre,2000.50\n")

	payloads, err := readMedecineCSV(input)
	require.NoError(t, err)
	require.Len(t, payloads, 2)

	assert.Equal(t, models.MedecinePayload{
		Code:     "M001",
		Name:     "Doliprane",
		DCI:      "Paracétamol",
		Group:    "Antalgique",
		Category: "Comprimé",
		Regime:   "Libre",
		Price:    1500,
	}, payloads[0])
	assert.Equal(t, 2000.50, payloads[1].Price)
}

func TestReadMedecineCSV_Invalid(t *testing.T) {
	_, err := readMedecineCSV(strings.NewReader("code,name,dci,group,category,regime,price\n"))
	assert.Error(t, err)

	_, err = readMedecineCSV(strings.NewReader("M001,Doliprane,Paracétamol,Antalgique,Comprimé,Libre,pas-un-prix\n"))
	assert.Error(t, err)

	// wrong column count
	_, err = readMedecineCSV(strings.NewReader("M001,Doliprane\n"))
	assert.Error(t, err)
}

func TestExportPharmacies_CSV(t *testing.T) {
	app, _ := newTestApp(t, true)
	app.medical = &fakeMedical{exportRows: []models.PharmacyExport{
		{Code: "PH1", Name: "Pharmacie du Plateau", Section: "Abidjan Nord", Area: "Plateau",
			Address: "Rue du Commerce", Lng: -4.02, Lat: 5.32, Phone: "0102030405",
			Owner: "Dr Koffi", IsGuard: true},
	}}

	var buf bytes.Buffer
	require.NoError(t, app.exportPharmacies(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "code,name,section,area,address,lng,lat,phone,owner,isGuard", lines[0])
	assert.Contains(t, lines[1], "PH1,Pharmacie du Plateau,Abidjan Nord,Plateau,Rue du Commerce,-4.02,5.32,0102030405,Dr Koffi,true")
}

func TestExec_GuardRotation(t *testing.T) {
	app, out := newTestApp(t, true)
	medical := &fakeMedical{}
	app.medical = medical
	app.route = "/medical-resources/pharmacies"

	app.Exec(context.Background(), "guard", []string{"2026-09", "PH1,PH2,PH3"})

	require.NotNil(t, medical.guard)
	assert.Equal(t, "2026-09", medical.guard["guardPeriod"])
	assert.Equal(t, []string{"PH1", "PH2", "PH3"}, medical.guard["codes"])
	assert.Contains(t, out.String(), "Pharmacies de garde mises à jour")
}

func TestExec_MedecineImport(t *testing.T) {
	app, out := newTestApp(t, true)
	medical := &fakeMedical{}
	app.medical = medical
	app.route = "/medical-resources/medecines"

	dir := t.TempDir()
	path := dir + "/medecines.csv"
	csv := "code,name,dci,group,category,regime,price\nM001,Doliprane,Paracétamol,Antalgique,Comprimé,Libre,1500\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	app.Exec(context.Background(), "import", []string{path})

	require.Len(t, medical.bulk, 1)
	assert.Equal(t, "M001", medical.bulk[0].Code)
	assert.Contains(t, out.String(), "Import terminé")
}
