package stockrequest

// NameSequencer entrega folios consecutivos por empresa para solicitudes
// confirmadas sin nombre definitivo. Garantiza nombres únicos dentro de la
// empresa.
type NameSequencer interface {
	Next(companyID string) (string, error)
}
