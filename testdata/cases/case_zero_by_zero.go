package main

var a = 0 / 0
