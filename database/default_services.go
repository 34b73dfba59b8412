package database

import (
	"slices"

	"github.com/rpupo63/domp-site-backend/models"
)

// defaultServices is the built-in specialties catalog, shown while the store
// has no services of its own.
var defaultServices = []models.Service{
	{
		ID:                  "vivienda-residencial",
		Title:               "Vivienda residencial",
		Description:         "Construcción de casas y viviendas con los más altos estándares de calidad y cumplimiento de normativas.",
		DetailedDescription: "Especializados en la construcción de viviendas residenciales desde cero. Trabajamos con diseños personalizados o planos existentes, garantizando calidad en cada etapa del proceso constructivo.",
		Benefits:            []string{"Diseños personalizados", "Materiales de primera calidad", "Cumplimiento de normativas", "Entrega en tiempo y forma", "Supervisión profesional"},
		IdealClient:         "Familias y desarrolladores inmobiliarios",
		Icon:                "🏠",
		Category:            "Construcción",
	},
	{
		ID:                  "locales-bodegas",
		Title:               "Locales y bodegas",
		Description:         "Construcción de espacios comerciales e industriales adaptados a tus necesidades específicas.",
		DetailedDescription: "Desarrollamos locales comerciales y bodegas con enfoque en funcionalidad, eficiencia y cumplimiento de normativas comerciales e industriales.",
		Benefits:            []string{"Optimización de espacios", "Cumplimiento de normativas", "Proyectos llave en mano", "Planeación estratégica"},
		IdealClient:         "Empresarios y comerciantes",
		Icon:                "🏢",
		Category:            "Construcción",
	},
	{
		ID:                  "ampliaciones-segundas-plantas",
		Title:               "Ampliaciones y segundas plantas",
		Description:         "Ampliación de espacios existentes mediante segundas plantas o extensiones horizontales.",
		DetailedDescription: "Especialistas en ampliar tu vivienda o negocio mediante la construcción de segundas plantas o ampliaciones. Maximizamos el espacio disponible respetando la estructura existente.",
		Benefits:            []string{"Maximización de espacio", "Respeto a estructura existente", "Optimización de costos", "Mejora de valor inmobiliario"},
		IdealClient:         "Propietarios que buscan ampliar su espacio",
		Icon:                "📐",
		Category:            "Construcción",
	},
	{
		ID:                  "remodelacion-integral",
		Title:               "Remodelación integral",
		Description:         "Transformación completa de espacios existentes, renovando desde la estructura hasta los acabados finales.",
		DetailedDescription: "Remodelaciones integrales que transforman completamente tu espacio. Trabajamos en todas las áreas: estructura, instalaciones, acabados y diseño interior.",
		Benefits:            []string{"Transformación completa", "Optimización de espacios", "Trabajo coordinado", "Valor agregado a la propiedad"},
		IdealClient:         "Propietarios que buscan renovar completamente",
		Icon:                "🔄",
		Category:            "Remodelación",
	},
	{
		ID:                  "cocinas-banos",
		Title:               "Cocinas y baños",
		Description:         "Remodelación especializada de cocinas y baños con diseño moderno y funcional.",
		DetailedDescription: "Especialistas en la remodelación de cocinas y baños. Creamos espacios modernos, funcionales y estéticamente atractivos, optimizando cada centímetro disponible.",
		Benefits:            []string{"Diseño moderno y funcional", "Optimización de espacio", "Materiales de calidad", "Instalaciones actualizadas"},
		IdealClient:         "Propietarios que buscan modernizar cocinas y baños",
		Icon:                "🚿",
		Category:            "Remodelación",
	},
	{
		ID:                  "renovacion-fachadas",
		Title:               "Renovación de fachadas",
		Description:         "Renovación y mejoramiento de fachadas para dar nueva imagen a tu propiedad.",
		DetailedDescription: "Transformamos la apariencia exterior de tu propiedad mediante la renovación completa de fachadas. Mejoramos estética, protección y valor de la propiedad.",
		Benefits:            []string{"Mejora estética exterior", "Protección contra intemperie", "Aumento de valor", "Imagen renovada"},
		IdealClient:         "Propietarios que buscan mejorar la apariencia exterior",
		Icon:                "🏛️",
		Category:            "Remodelación",
	},
	{
		ID:                  "pisos-recubrimientos",
		Title:               "Pisos y recubrimientos",
		Description:         "Instalación de pisos y recubrimientos de alta calidad: cerámica, porcelanato, madera, laminado y más.",
		DetailedDescription: "Especialistas en la instalación de todo tipo de pisos y recubrimientos. Trabajamos con cerámica, porcelanato, madera, laminado, vinílico y materiales premium.",
		Benefits:            []string{"Amplia variedad de materiales", "Instalación profesional", "Acabados perfectos", "Durabilidad garantizada"},
		IdealClient:         "Propietarios y constructores",
		Icon:                "🪨",
		Category:            "Acabados",
	},
	{
		ID:                  "pintura-profesional",
		Title:               "Pintura profesional",
		Description:         "Servicio de pintura profesional con preparación adecuada de superficies y acabados perfectos.",
		DetailedDescription: "Pintura profesional con preparación exhaustiva de superficies. Aplicamos técnicas especializadas para lograr acabados perfectos y duraderos.",
		Benefits:            []string{"Preparación profesional de superficies", "Acabados perfectos", "Materiales de calidad", "Técnicas especializadas"},
		IdealClient:         "Propietarios y constructores",
		Icon:                "🎨",
		Category:            "Acabados",
	},
	{
		ID:                  "electrica",
		Title:               "Eléctrica",
		Description:         "Instalación y mantenimiento de sistemas eléctricos residenciales, comerciales e industriales.",
		DetailedDescription: "Instalamos y mantenemos sistemas eléctricos completos. Garantizamos seguridad, eficiencia y cumplimiento de normativas eléctricas vigentes.",
		Benefits:            []string{"Cumplimiento de normativas", "Seguridad garantizada", "Instalación profesional", "Mantenimiento disponible"},
		IdealClient:         "Propietarios y empresas",
		Icon:                "⚡",
		Category:            "Instalaciones",
	},
	{
		ID:                  "hidraulica-sanitaria",
		Title:               "Hidráulica y sanitaria",
		Description:         "Instalación de sistemas hidráulicos y sanitarios completos para agua fría, caliente y drenaje.",
		DetailedDescription: "Instalamos sistemas hidráulicos y sanitarios completos. Trabajamos con tuberías, conexiones, calentadores y sistemas de drenaje eficientes.",
		Benefits:            []string{"Sistemas completos", "Materiales de calidad", "Instalación profesional", "Eficiencia garantizada"},
		IdealClient:         "Propietarios y constructores",
		Icon:                "🚰",
		Category:            "Instalaciones",
	},
	{
		ID:                  "impermeabilizacion",
		Title:               "Impermeabilización",
		Description:         "Servicios de impermeabilización para techos, azoteas y áreas expuestas a la intemperie.",
		DetailedDescription: "Aplicamos sistemas de impermeabilización profesionales para proteger tu propiedad. Trabajamos con membranas, recubrimientos y sistemas especializados.",
		Benefits:            []string{"Protección contra humedad", "Materiales de calidad", "Garantía de trabajo", "Sistemas especializados"},
		IdealClient:         "Propietarios",
		Icon:                "🛡️",
		Category:            "Exteriores",
	},
	{
		ID:                  "obra-llave-mano",
		Title:               "Obra llave en mano",
		Description:         "Ejecución completa de proyectos desde el diseño hasta la entrega final, sin preocupaciones para el cliente.",
		DetailedDescription: "Ofrecemos servicio de obra llave en mano completo. Nos encargamos de todo: diseño, permisos, construcción, instalaciones y acabados. Tú solo recibes tu proyecto terminado.",
		Benefits:            []string{"Servicio integral", "Sin preocupaciones", "Un solo responsable", "Entrega completa"},
		IdealClient:         "Inversionistas y propietarios",
		Icon:                "🔑",
		Category:            "Gestión de obra",
	},
}

// DefaultServices returns a copy of the built-in catalog.
func DefaultServices() []models.Service {
	out := make([]models.Service, len(defaultServices))
	for i, s := range defaultServices {
		s.Benefits = slices.Clone(s.Benefits)
		s.GalleryImages = slices.Clone(s.GalleryImages)
		out[i] = s
	}
	return out
}
