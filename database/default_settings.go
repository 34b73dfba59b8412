package database

import "github.com/rpupo63/domp-site-backend/models"

// DefaultSettings returns the settings served when nothing is stored yet or
// the store cannot be reached. Each call returns a fresh copy.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		Phones:       []string{"614 2156600"},
		Emails:       []string{"domp@contruccion.mx"},
		WhatsApp:     "6142156600",
		Address:      "",
		City:         "Chihuahua, Chihuahua",
		ServiceAreas: []string{"Chihuahua y alrededores"},
		Social: models.NewSocialLinks(
			"instagram", "https://www.instagram.com/domp.mx?igsh=b2xhM3JkdXg3N2p4",
			"facebook", "https://www.facebook.com/share/16rTmPc5Zm/?mibextid=wwXIfr",
			"tiktok", "",
			"linkedin", "",
		),
		Hero: models.Hero{
			Headline:         "DomP",
			Subheadline:      "Empresa líder en construcción en México. Transformamos tus ideas en realidad con calidad, profesionalismo y compromiso.",
			PrimaryCtaText:   "Cotizar Proyecto",
			PrimaryCtaHref:   "/contacto",
			SecondaryCtaText: "Ver Proyectos",
			SecondaryCtaHref: "/proyectos",
		},
		Nosotros: models.Nosotros{
			Historia: "DomP nació en 2008 con la visión de ser una empresa de construcción que prioriza la calidad, el compromiso y la satisfacción del cliente. " +
				"Desde nuestros inicios en Chihuahua, hemos crecido hasta convertirnos en una empresa reconocida por la excelencia en la ejecución de proyectos residenciales, comerciales e industriales.\n\n" +
				"A lo largo de más de 15 años, hemos completado cientos de proyectos, siempre manteniendo nuestros estándares de calidad y cumplimiento de tiempos. " +
				"Nuestro equipo está formado por profesionales altamente capacitados que comparten nuestra pasión por la construcción y el servicio al cliente.",
			Mision: "Construir proyectos de alta calidad que superen las expectativas de nuestros clientes, utilizando materiales de primera y cumpliendo con los más altos estándares de seguridad y normatividad, siempre con profesionalismo y compromiso.",
			Vision: "Ser la empresa de construcción líder en la región, reconocida por nuestra excelencia, innovación y compromiso con la satisfacción del cliente, contribuyendo al desarrollo urbano y al crecimiento de nuestras comunidades.",
			Valores: []string{
				"Calidad en cada proyecto",
				"Integridad y transparencia",
				"Compromiso con tiempos",
				"Trabajo en equipo",
				"Responsabilidad social",
			},
			TeamMembers: []models.TeamMember{
				{Role: "Director de Obra", Name: "Juan Domínguez", Description: "Responsable de la coordinación general, gestión de recursos y cumplimiento de objetivos."},
				{Role: "Arquitecto", Description: "Diseño arquitectónico, supervisión de acabados y coordinación con el cliente."},
				{Role: "Ingeniero Residente", Description: "Supervisión técnica diaria, control de calidad y cumplimiento de especificaciones."},
				{Role: "Coordinador de Proyectos", Description: "Planeación, seguimiento de avances y gestión de proveedores y subcontratistas."},
			},
			ProcessSteps: []models.ProcessStep{
				{Step: 1, Title: "Análisis y Consultoría", Description: "Evaluamos tus necesidades, analizamos el terreno y definimos la viabilidad del proyecto."},
				{Step: 2, Title: "Diseño y Planeación", Description: "Desarrollamos el diseño arquitectónico y la planeación detallada del proyecto."},
				{Step: 3, Title: "Presupuesto y Contratación", Description: "Presentamos un presupuesto detallado y transparente. Al aprobarlo, formalizamos la contratación."},
				{Step: 4, Title: "Construcción", Description: "Ejecutamos la obra con supervisión constante, reportes periódicos y comunicación fluida."},
				{Step: 5, Title: "Entrega y Garantía", Description: "Entregamos el proyecto terminado con la documentación correspondiente y garantía de obra."},
			},
		},
		Colors: models.Colors{
			Primary:            "#101932",
			Accent:             "#F18121",
			AccentHover:        "#e0771a",
			BackgroundLight:    "#EDEDED",
			TextDark:           "#171719",
			SocialButtons:      "#F18121",
			SocialButtonsHover: "#e0771a",
		},
	}
}
