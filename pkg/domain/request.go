package domain

// IngestedRequest is the canonical form of a delivery request regardless of
// the file encoding it was read from. It lives only between ingestion and
// order assembly.
type IngestedRequest struct {
	Cargo    []CargoLine
	Distance float64
	// TransportKind is empty when every known transport should be quoted.
	TransportKind string
	Destination   string
}

// WithTransport returns a copy of r pinned to transport kind. The cargo
// slice is copied so the two requests never alias.
func (r IngestedRequest) WithTransport(kind string) IngestedRequest {
	out := r
	out.Cargo = append([]CargoLine(nil), r.Cargo...)
	out.TransportKind = kind

	return out
}
