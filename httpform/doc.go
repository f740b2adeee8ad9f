// Package httpform extracts ordered form fields from HTTP requests for the
// mailform pipeline.
//
// Both multipart/form-data and application/x-www-form-urlencoded bodies are
// supported. Unlike net/http's ParseForm, field order is preserved, which
// the rendered email body depends on.
//
//	fields, err := httpform.Fields(r, 0)
//	if err != nil {
//		http.Error(w, "bad form", http.StatusBadRequest)
//		return
//	}
//	err = m.Send(r.Context(), mailform.Message{Fields: fields})
package httpform
