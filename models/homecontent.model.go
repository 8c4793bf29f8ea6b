package models

// HomeBranding holds the store identity shown in the header
type HomeBranding struct {
	NomeLoja string `bson:"nome_loja" json:"nome_loja"`
	Slogan   string `bson:"slogan" json:"slogan"`
	LogoURL  string `bson:"logo_url" json:"logo_url"`
}

// HomeHero is the banner at the top of the home page
type HomeHero struct {
	Imagem       string   `bson:"imagem" json:"imagem"`
	Titulo       string   `bson:"titulo" json:"titulo"`
	Texto        []string `bson:"texto" json:"texto"`
	FraseImpacto string   `bson:"frase_impacto" json:"frase_impacto"`
	CTATexto     string   `bson:"cta_texto" json:"cta_texto"`
	CTALink      string   `bson:"cta_link" json:"cta_link"`
}

// HomeSobre is the about section
type HomeSobre struct {
	Titulo    string   `bson:"titulo" json:"titulo"`
	Mensagens []string `bson:"mensagens" json:"mensagens"`
	Textos    []string `bson:"textos" json:"textos"`
	Fotos     []string `bson:"fotos" json:"fotos"`
}

// HomeContato is the contact section
type HomeContato struct {
	Titulo       string           `bson:"titulo" json:"titulo"`
	Subtitulo    string           `bson:"subtitulo" json:"subtitulo"`
	InstagramURL string           `bson:"instagram_url" json:"instagram_url"`
	Lojas        []map[string]any `bson:"lojas" json:"lojas"`
}

// HomeFooter is the footer section
type HomeFooter struct {
	Institucional string           `bson:"institucional" json:"institucional"`
	CNPJ          string           `bson:"cnpj" json:"cnpj"`
	SeloTexto     string           `bson:"selo_texto" json:"selo_texto"`
	Lojas         []map[string]any `bson:"lojas" json:"lojas"`
	Certificados  []string         `bson:"certificados" json:"certificados"`
}

// HomeContent is the single CMS document driving the public home page.
// It is stored under the slug "home"; older deployments used "Casa".
type HomeContent struct {
	Slug     string       `bson:"slug" json:"slug"`
	Branding HomeBranding `bson:"branding" json:"branding"`
	Hero     HomeHero     `bson:"hero" json:"hero"`
	Sobre    HomeSobre    `bson:"sobre" json:"sobre"`
	Contato  HomeContato  `bson:"contato" json:"contato"`
	Footer   HomeFooter   `bson:"footer" json:"footer"`
}

// DefaultHomeContent is served when no document has been saved yet.
// Slices are allocated so the JSON carries [] instead of null.
func DefaultHomeContent() HomeContent {
	return HomeContent{
		Slug: "home",
		Hero: HomeHero{Texto: []string{}},
		Sobre: HomeSobre{
			Mensagens: []string{},
			Textos:    []string{},
			Fotos:     []string{},
		},
		Contato: HomeContato{Lojas: []map[string]any{}},
		Footer: HomeFooter{
			Lojas:        []map[string]any{},
			Certificados: []string{},
		},
	}
}
