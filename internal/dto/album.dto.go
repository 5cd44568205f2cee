package dto

type PhotoDTO struct {
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type AlbumDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Photos      []PhotoDTO `json:"photos"`
}
