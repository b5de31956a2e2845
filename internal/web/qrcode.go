package web

import (
	"net/http"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// QRCodeHandler serves payload() as a PNG QR code. The payload is resolved per
// request so it can reflect the bound listen address.
func QRCodeHandler(payload func(r *http.Request) string, sizePx int) http.Handler {
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := payload(r)
		if text == "" {
			http.NotFound(w, r)
			return
		}
		png, err := qrcode.Encode(text, qrcode.Medium, sizePx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})
}
