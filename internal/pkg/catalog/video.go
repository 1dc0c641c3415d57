package catalog

// Video is one record of the static catalog fixture. It is never mutated;
// Duration is "mm:ss" and Views keeps the source "12.5K" display form.
type Video struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Thumbnail  string   `json:"thumbnail"`
	Category   string   `json:"category"`
	Duration   string   `json:"duration"`
	Views      string   `json:"views"`
	UploadDate string   `json:"upload_date"`
	IsNew      bool     `json:"is_new"`
	IsFeatured bool     `json:"is_featured"`
	Tags       []string `json:"tags"`
}

var videos = []Video{
	{
		ID:         "1",
		Title:      "Tutorial React Avançado - Hooks e Context API",
		Thumbnail:  "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=225&fit=crop",
		Category:   "Programação",
		Duration:   "45:30",
		Views:      "12.5K",
		UploadDate: "2024-12-20",
		IsNew:      true,
		IsFeatured: true,
		Tags:       []string{"React", "JavaScript", "Frontend"},
	},
	{
		ID:         "2",
		Title:      "Design de Interfaces Modernas com Figma",
		Thumbnail:  "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=400&h=225&fit=crop",
		Category:   "Design",
		Duration:   "32:15",
		Views:      "8.2K",
		UploadDate: "2024-12-18",
		Tags:       []string{"Figma", "UI/UX", "Design"},
	},
	{
		ID:         "3",
		Title:      "Machine Learning Básico - Introdução à IA",
		Thumbnail:  "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400&h=225&fit=crop",
		Category:   "IA",
		Duration:   "28:45",
		Views:      "15.7K",
		UploadDate: "2024-12-15",
		Tags:       []string{"Machine Learning", "Python", "IA"},
	},
	{
		ID:         "4",
		Title:      "Fotografia Profissional - Técnicas Avançadas",
		Thumbnail:  "https://images.unsplash.com/photo-1452587925148-ce544e77e70d?w=400&h=225&fit=crop",
		Category:   "Fotografia",
		Duration:   "52:20",
		Views:      "6.9K",
		UploadDate: "2024-12-12",
		Tags:       []string{"Fotografia", "Camera", "Edição"},
	},
	{
		ID:         "5",
		Title:      "Produção de Música Eletrônica 2024",
		Thumbnail:  "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=225&fit=crop",
		Category:   "Música",
		Duration:   "38:12",
		Views:      "9.3K",
		UploadDate: "2024-12-10",
		Tags:       []string{"Música", "Produção", "Eletrônica"},
	},
	{
		ID:         "6",
		Title:      "Viagem pelo Mundo - Destinos Incríveis",
		Thumbnail:  "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=400&h=225&fit=crop",
		Category:   "Viagem",
		Duration:   "41:33",
		Views:      "11.1K",
		UploadDate: "2024-12-08",
		Tags:       []string{"Viagem", "Turismo", "Aventura"},
	},
	{
		ID:         "7",
		Title:      "Jogos Indie - Descobertas 2024",
		Thumbnail:  "https://images.unsplash.com/photo-1556438064-2d7646166914?w=400&h=225&fit=crop",
		Category:   "Games",
		Duration:   "29:45",
		Views:      "18.2K",
		UploadDate: "2024-12-05",
		IsNew:      true,
		Tags:       []string{"Games", "Indie", "Reviews"},
	},
	{
		ID:         "8",
		Title:      "Culinária Gourmet - Receitas Premium",
		Thumbnail:  "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=225&fit=crop",
		Category:   "Culinária",
		Duration:   "35:20",
		Views:      "7.8K",
		UploadDate: "2024-12-03",
		Tags:       []string{"Culinária", "Receitas", "Gourmet"},
	},
	{
		ID:         "9",
		Title:      "Fitness e Saúde - Rotina Completa",
		Thumbnail:  "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=225&fit=crop",
		Category:   "Fitness",
		Duration:   "42:10",
		Views:      "14.6K",
		UploadDate: "2024-12-01",
		Tags:       []string{"Fitness", "Saúde", "Exercícios"},
	},
}

// All returns the full fixture in source order.
func All() []Video {
	out := make([]Video, len(videos))
	copy(out, videos)
	return out
}

// Featured returns the highlighted hero record, falling back to the first entry.
func Featured() Video {
	for _, v := range videos {
		if v.IsFeatured {
			return v
		}
	}
	return videos[0]
}

// Categories returns the fixed category filter list, "Todos" first.
func Categories() []string {
	return []string{"Todos", "Programação", "Design", "IA", "Fotografia", "Música", "Viagem", "Games", "Culinária", "Fitness"}
}
