package main

import (
	"fmt"

	_ "github.com/cocode/gestion_mid/routers"
	"github.com/cocode/gestion_mid/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

var logLevels = map[string]int{
	"debug": logs.LevelDebug,
	"info":  logs.LevelInformational,
	"warn":  logs.LevelWarning,
	"error": logs.LevelError,
}

func main() {
	cfg := services.GetConfig()

	_ = logs.SetLogger(logs.AdapterConsole)
	logs.EnableFuncCallDepth(true)
	if level, ok := logLevels[cfg.LogLevel]; ok {
		logs.SetLevel(level)
	}

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.CopyRequestBody = true
	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}

	logs.Info("iniciando", cfg.AppName, "gestion", cfg.GestionAPIBaseURL, "puerto", cfg.HTTPPort)
	beego.Run(fmt.Sprintf(":%d", cfg.HTTPPort))
}
