package entity

// ProcurementGroup agrupa solicitudes para el aprovisionamiento aguas abajo:
// los movimientos generados por solicitudes del mismo grupo se consolidan.
type ProcurementGroup struct {
	ID   string
	Name string
}
