// mockapi fakes the backing business API for local development: run it on
// :3000 and point BACKEND_BASE_URL at it. It answers with the same loose
// field spellings the real API mixes, so the normalization paths get
// exercised outside production too.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

type product struct {
	ID          int     `json:"id"`
	Nome        string  `json:"nome"`
	Descricao   string  `json:"descricao"`
	Preco       float64 `json:"preco"`
	Estoque     int     `json:"estoque"`
	ImagemURL   string  `json:"imagem_principal,omitempty"`
	IDCategoria int     `json:"id_categoria,omitempty"`
	Categoria   string  `json:"categoriaNome,omitempty"`
	Ativo       bool    `json:"ativo"`
}

type store struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Desc     string `json:"descricao"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`
	Logo     string `json:"imagem_logo,omitempty"`
}

type server struct {
	mu     sync.Mutex
	nextID int
	loja   store
	items  []product
}

func newServer() *server {
	return &server{
		nextID: 3,
		loja: store{
			ID:       1,
			Nome:     "Armazém do Seridó",
			Desc:     "Produtos regionais direto do produtor.",
			Telefone: "(84) 99999-0000",
			Endereco: "Caicó, RN",
		},
		items: []product{
			{ID: 1, Nome: "Queijo de manteiga", Descricao: "Peça de 500g", Preco: 32.5, Estoque: 12, IDCategoria: 10, Categoria: "Laticínios", Ativo: true},
			{ID: 2, Nome: "Doce de leite", Descricao: "Pote de 400g", Preco: 18, Estoque: 0, IDCategoria: 11, Categoria: "Doces", Ativo: false},
		},
	}
}

func (s *server) sellerCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"loja":     s.loja,
		"produtos": s.items,
	})
}

func (s *server) storeInfo(w http.ResponseWriter, r *http.Request, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != strconv.Itoa(s.loja.ID) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "loja não encontrada"})
		return
	}
	writeJSON(w, http.StatusOK, s.loja)
}

func (s *server) storeProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]product, 0, len(s.items))
	for _, p := range s.items {
		if p.Ativo {
			active = append(active, p)
		}
	}
	writeJSON(w, http.StatusOK, active)
}

func (s *server) create(w http.ResponseWriter, r *http.Request) {
	var p product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "payload inválido"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	s.items = append(s.items, p)
	writeJSON(w, http.StatusCreated, p)
}

func (s *server) update(w http.ResponseWriter, r *http.Request, id string) {
	var in product
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "payload inválido"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if strconv.Itoa(s.items[i].ID) == id {
			in.ID = s.items[i].ID
			s.items[i] = in
			writeJSON(w, http.StatusOK, in)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"message": "produto não encontrado"})
}

func (s *server) delete(w http.ResponseWriter, r *http.Request, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if strconv.Itoa(s.items[i].ID) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"message": "produto excluído"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"message": "produto não encontrado"})
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/produtos/minha-loja", func(w http.ResponseWriter, r *http.Request) {
		s.sellerCatalog(w, r)
	})
	mux.HandleFunc("/lojas/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/lojas/")
		if strings.HasSuffix(rest, "/produtos") {
			s.storeProducts(w, r)
			return
		}
		s.storeInfo(w, r, rest)
	})
	mux.HandleFunc("/produtos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			s.create(w, r)
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/produtos/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/produtos/")
		switch r.Method {
		case http.MethodPut:
			s.update(w, r, id)
		case http.MethodDelete:
			s.delete(w, r, id)
		default:
			http.NotFound(w, r)
		}
	})

	return logRequests(mux)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	flag.Parse()

	srv := newServer()
	fmt.Printf("mock API listening on %s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.routes()))
}
