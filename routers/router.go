package routers

import (
	"github.com/cocode/gestion_mid/controllers/errorhandler"
	internalcontrollers "github.com/cocode/gestion_mid/internal/controllers"
	"github.com/cocode/gestion_mid/internal/middlewares"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})
	beego.BConfig.RecoverFunc = errorhandler.RecoverPanic

	middlewares.UseRequestID()

	beego.Router("/v1/personas", &internalcontrollers.PersonasController{}, "get:GetListado;post:Post")
	beego.Router("/v1/personas/roles-disponibles", &internalcontrollers.PersonasController{}, "get:GetRolesDisponibles")
	beego.Router("/v1/personas/:id", &internalcontrollers.PersonasController{}, "put:Put;delete:Delete")

	beego.Router("/v1/derechos", &internalcontrollers.DerechosController{}, "get:GetListado;post:Post")
	beego.Router("/v1/derechos/:id/vincular-cuota", &internalcontrollers.DerechosController{}, "post:PostVincularCuota")
	beego.Router("/v1/derechos/:id", &internalcontrollers.DerechosController{}, "put:Put;delete:Delete")

	beego.Router("/v1/cuotas", &internalcontrollers.CuotasController{}, "get:GetListado;post:Post")

	beego.Router("/v1/pagos", &internalcontrollers.PagosController{}, "get:GetListado;post:Post")
	beego.Router("/v1/pagos/saldo", &internalcontrollers.PagosController{}, "get:GetSaldo")

	beego.Router("/v1/asignaciones", &internalcontrollers.FinanzasController{}, "get:GetAsignaciones;post:PostAsignacion")
	beego.Router("/v1/ingresos", &internalcontrollers.FinanzasController{}, "get:GetIngresos")
	beego.Router("/v1/ingresos/total", &internalcontrollers.FinanzasController{}, "get:GetTotalIngresos")
	beego.Router("/v1/egresos", &internalcontrollers.FinanzasController{}, "get:GetEgresos;post:PostEgreso")
	beego.Router("/v1/egresos/total", &internalcontrollers.FinanzasController{}, "get:GetTotalEgresos")
	beego.Router("/v1/fondos", &internalcontrollers.FinanzasController{}, "get:GetFondos")
}
