package models

// Severity is the seriousness level of an infraction. The set is closed;
// anything else falls back to the minimum deduction.
type Severity string

const (
	SeverityLeve     Severity = "leve"
	SeverityMedia    Severity = "media"
	SeverityGrave    Severity = "grave"
	SeverityMuyGrave Severity = "muy_grave"
)

var severityPoints = map[Severity]int{
	SeverityLeve:     1,
	SeverityMedia:    3,
	SeverityGrave:    5,
	SeverityMuyGrave: 10,
}

// PointsForSeverity returns how many license points a severity deducts.
// Unknown severities deduct 1, same as "leve"; the original system treats
// bad input as the mildest infraction rather than rejecting it.
func PointsForSeverity(severity Severity) int {
	if points, ok := severityPoints[severity]; ok {
		return points
	}
	return 1
}

// SuggestedPenalty is an advisory pairing of severity and amount for a known
// infraction reason. It seeds the issuing form and is never enforced.
type SuggestedPenalty struct {
	Reason   string   `json:"reason"`
	Severity Severity `json:"severity"`
	Amount   float64  `json:"amount"`
}

var SuggestedPenalties = []SuggestedPenalty{
	{"Estacionamiento indebido", SeverityLeve, 5000},
	{"No usar cinturón de seguridad", SeverityLeve, 8000},
	{"Luces apagadas de noche", SeverityLeve, 6000},
	{"Documentación vencida", SeverityLeve, 7000},
	{"Exceso de velocidad moderado", SeverityMedia, 15000},
	{"Usar celular mientras conduce", SeverityMedia, 12000},
	{"No respetar semáforo en amarillo", SeverityMedia, 10000},
	{"Giro prohibido", SeverityMedia, 9000},
	{"Exceso de velocidad grave", SeverityGrave, 30000},
	{"Pasarse semáforo en rojo", SeverityGrave, 25000},
	{"Conducir sin licencia", SeverityGrave, 35000},
	{"Maniobra peligrosa", SeverityGrave, 28000},
	{"Conducir en estado de ebriedad", SeverityMuyGrave, 80000},
	{"Exceso de velocidad extremo", SeverityMuyGrave, 60000},
	{"Conducir bajo efectos de drogas", SeverityMuyGrave, 100000},
	{"Fuga del lugar del accidente", SeverityMuyGrave, 90000},
}
