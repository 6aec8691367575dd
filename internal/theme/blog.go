package theme

import "github.com/kbchulan/clblogs/internal/render"

// Media is a social link shown on the blogger card.
type Media struct {
	Name  string
	Value string
}

// Blog is the blogger profile.
type Blog struct {
	Avatar      string
	Description string
	// Medias keeps display order.
	Medias []Media
}

func DefaultBlog() Blog {
	return Blog{
		Avatar:      "/assets/imgs/head.png",
		Description: "啥都想学，啥都不会的程序猿",
		Medias: []Media{
			{Name: "GitHub", Value: "https://github.com/KBchulan"},
			{Name: "QQ", Value: "2262317520"},
			{Name: "Wechat", Value: "18737519552"},
			{Name: "Email", Value: "18737519552@163.com"},
			{Name: "Gmail", Value: "whx5234@gmail.com"},
		},
	}
}

func (b Blog) Document() map[string]any {
	medias := render.NewMap()
	for _, m := range b.Medias {
		medias.Set(m.Name, m.Value)
	}
	return map[string]any{
		"avatar":      b.Avatar,
		"description": b.Description,
		"medias":      medias,
	}
}
