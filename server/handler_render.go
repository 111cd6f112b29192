package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

// WarningsHeader reports how many warning types the rendered document triggered.
const WarningsHeader = "X-Fatturapa-Warnings"

// handleRender decodes a JSON FiscalDocument and answers with its FatturaPA XML.
// Treatment flags come from the splitPayment and reverseCharge query parameters.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	opts, err := parseTreatment(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	var doc fattura.FiscalDocument
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid document: %v", err), nil)
		return
	}

	if err := fattura.Validate(doc); err != nil {
		var verr *fattura.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, fattura.ErrInvalidDocument.Error(), verr.Fields)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	warnings := converter.Check(doc, opts)
	warnings.LogAll(log, converter.DocumentSubject(doc))

	body := s.conv.Convert(doc, opts)

	log.Debug().
		Str("document", doc.Number()).
		Bool("split_payment", opts.SplitPayment).
		Bool("reverse_charge", opts.ReverseCharge).
		Int("bytes", len(body)).
		Msg("document rendered")

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName()))
	w.Header().Set(WarningsHeader, strconv.Itoa(warnings.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func parseTreatment(r *http.Request) (fattura.TaxTreatmentOptions, error) {
	var opts fattura.TaxTreatmentOptions
	q := r.URL.Query()

	flags := []struct {
		name string
		dst  *bool
	}{
		{"splitPayment", &opts.SplitPayment},
		{"reverseCharge", &opts.ReverseCharge},
	}
	for _, f := range flags {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid %s: %q", f.name, v)
		}
		*f.dst = b
	}
	return opts, nil
}
