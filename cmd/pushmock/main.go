package main

import (
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"

	"pushkit/internal/crypto"
	"pushkit/internal/domain"
	"pushkit/internal/protocol/webpush"
)

type subscriber struct {
	priv domain.P256Private
	pub  domain.P256Public
	auth [webpush.AuthLen]byte
}

func newSubscriber() (*subscriber, error) {
	priv, pub, err := crypto.GenerateP256()
	if err != nil {
		return nil, err
	}
	s := &subscriber{priv: priv, pub: pub}
	if _, err := rand.Read(s.auth[:]); err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	addr := flag.String("addr", ":8181", "listen address")
	status := flag.Int("status", 201, "status to answer deliveries with (e.g. 410 to exercise expiry)")
	flag.Parse()

	sub, err := newSubscriber()
	if err != nil {
		log.Fatal(err)
	}

	// Print the subscription exactly as a browser would hand it to the web
	// layer, ready for `pushkit subscribe`.
	blob, _ := json.MarshalIndent(map[string]any{
		"endpoint": "http://localhost" + *addr + "/push/device-1",
		"keys": map[string]string{
			"p256dh": crypto.B64(sub.pub.Slice()),
			"auth":   crypto.B64(sub.auth[:]),
		},
	}, "", "  ")
	fmt.Println(string(blob))

	http.HandleFunc("/push/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		defer r.Body.Close()
		body, err := io.ReadAll(io.LimitReader(r.Body, 8192))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		plaintext, err := webpush.Decrypt(sub.priv, sub.auth, body)
		if err != nil {
			log.Printf("MOCK: %s: undecryptable record: %v", r.URL.Path, err)
			http.Error(w, "bad record", http.StatusBadRequest)
			return
		}

		var msg domain.NotificationMessage
		if err := json.Unmarshal(plaintext, &msg); err != nil {
			log.Printf("MOCK: %s: non-JSON payload %q", r.URL.Path, plaintext)
		} else {
			log.Printf("MOCK: would show notification on %s: %s / %s (ttl=%s urgency=%s)",
				r.URL.Path, msg.Title, msg.Body, r.Header.Get("TTL"), r.Header.Get("Urgency"))
		}
		w.WriteHeader(*status)
	})

	log.Printf("mock push service listening on %s (answering %d)", *addr, *status)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
